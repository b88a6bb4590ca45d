package objdump

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChainSafe/rvhex/disassembler"
	"github.com/ChainSafe/rvhex/opcode"
)

const dumpHeader = `
/tmp/rvhex-123.bin:     file format binary


Disassembly of section .data:

0000000000000000 <.data>:
`

func TestParseOutput(t *testing.T) {
	full := opcode.Word{Value: 0x00100513, Width: opcode.Width32}
	compressed := opcode.Word{Value: 0x4501, Width: opcode.Width16}

	tests := []struct {
		name   string
		output string
		word   opcode.Word
		want   string
		err    error
	}{
		{
			name:   "full width",
			output: dumpHeader + "   0:\t00100513          \tli\ta0,1\n",
			word:   full,
			want:   "li a0,1",
		},
		{
			name:   "compressed",
			output: dumpHeader + "   0:\t4501                \tli\ta0,0\n",
			word:   compressed,
			want:   "li a0,0",
		},
		{
			name:   "bad encoding",
			output: dumpHeader + "   0:\t0000                \t(bad)\n",
			word:   opcode.Word{Width: opcode.Width16},
			err:    disassembler.ErrUnsupported16Bit,
		},
		{
			name:   "raw directive",
			output: dumpHeader + "   0:\tffffffff          \t.4byte\t0xffffffff\n",
			word:   opcode.Word{Value: 0xffffffff, Width: opcode.Width32},
			err:    disassembler.ErrUnsupported32Bit,
		},
		{
			name:   "no instruction line",
			output: dumpHeader,
			word:   full,
			err:    disassembler.ErrUnsupported32Bit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOutput(tt.output, tt.word)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArgs(t *testing.T) {
	o := New("", 0)
	assert.Equal(t, DefaultBinary, o.Binary)
	assert.Equal(t, []string{"-D", "-b", "binary", "-m", "riscv:rv64", "in.bin"}, o.args("in.bin"))

	o = New("/opt/riscv/bin/objdump", 32)
	assert.Equal(t, []string{"-D", "-b", "binary", "-m", "riscv:rv32", "in.bin"}, o.args("in.bin"))
}

func TestDisassembleRejectsBeforeRunning(t *testing.T) {
	// the binary does not exist, so reaching exec would fail differently
	o := New("/nonexistent/objdump", 64)

	_, err := o.Disassemble("0x10000")
	assert.ErrorIs(t, err, disassembler.ErrInvalid16Bit)

	_, err = o.Disassemble("zz")
	assert.ErrorIs(t, err, disassembler.ErrInvalidInput)
}
