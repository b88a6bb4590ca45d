package objdump

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/ChainSafe/rvhex/disassembler"
	"github.com/ChainSafe/rvhex/opcode"
)

// the first instruction of a raw binary dump, e.g. "   0:\t00100513          \tli\ta0,1"
var instructionRe = regexp.MustCompile(`^\s*0:\s+([0-9a-fA-F]+)\s+(.*)$`)

// DefaultBinary is the objdump used when none is configured.
const DefaultBinary = "riscv64-unknown-elf-objdump"

// Objdump disassembles by running a GNU objdump built with RISC-V support.
type Objdump struct {
	Binary string
	XLEN   int
}

func New(binary string, xlen int) *Objdump {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Objdump{
		Binary: binary,
		XLEN:   xlen,
	}
}

func (o *Objdump) Disassemble(word string) (string, error) {
	w, err := disassembler.Prepare(word)
	if err != nil {
		return "", err
	}

	tempFile, err := os.CreateTemp("", "rvhex-*.bin")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tempFile.Name())
	}()
	if _, err = tempFile.Write(w.Bytes()); err != nil {
		_ = tempFile.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err = tempFile.Close(); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	//nolint:gosec
	cmd := exec.Command(o.Binary, o.args(tempFile.Name())...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("failed to run %s: %w\nOutput:\n%s", o.Binary, err, string(output))
	}
	return parseOutput(string(output), w)
}

func (o *Objdump) args(path string) []string {
	return []string{"-D", "-b", "binary", "-m", fmt.Sprintf("riscv:rv%d", o.xlen()), path}
}

func (o *Objdump) xlen() int {
	if o.XLEN == 32 {
		return 32
	}
	return 64
}

// parseOutput extracts the instruction at offset zero from objdump output.
func parseOutput(output string, w opcode.Word) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		matches := instructionRe.FindStringSubmatch(line)
		if len(matches) == 0 {
			continue
		}
		text := strings.Join(strings.Fields(strings.ReplaceAll(matches[2], "\t", " ")), " ")
		if text == "" || isUndecoded(text) {
			return "", disassembler.Unsupported(w)
		}
		return text, nil
	}
	return "", disassembler.Unsupported(w)
}

// isUndecoded reports objdump's placeholders for encodings it does not know.
func isUndecoded(text string) bool {
	if strings.HasPrefix(text, "(bad)") {
		return true
	}
	for _, directive := range []string{".2byte", ".4byte", ".short", ".word", ".insn"} {
		if strings.HasPrefix(text, directive) {
			return true
		}
	}
	return false
}
