package opcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  Word
		text  string
	}{
		{input: "0x13", want: Word{Value: 0x13, Width: Width32}, text: "0x00000013"},
		{input: "00100513", want: Word{Value: 0x00100513, Width: Width32}, text: "0x00100513"},
		{input: "0X4501", want: Word{Value: 0x4501, Width: Width16}, text: "0x4501"},
		{input: "4501", want: Word{Value: 0x4501, Width: Width16}, text: "0x4501"},
		{input: "ABCD", want: Word{Value: 0xabcd, Width: Width16}, text: "0xabcd"},
		{input: "abc", want: Word{Value: 0xabc, Width: Width16}, text: "0x0abc"},
		{input: "8082", want: Word{Value: 0x8082, Width: Width16}, text: "0x8082"},
		{input: "0", want: Word{Value: 0, Width: Width16}, text: "0x0000"},
		{input: "  0xfff00f93\r", want: Word{Value: 0xfff00f93, Width: Width32}, text: "0xfff00f93"},
		{input: "0x0000000013", want: Word{Value: 0x13, Width: Width32}, text: "0x00000013"},
		{input: "0x10000", want: Word{Value: 0x10000, Width: Width16}, text: "0x10000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, got.String())
		})
	}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{input: "", message: "empty hex word"},
		{input: "0x", message: "empty hex word"},
		{input: "   ", message: "empty hex word"},
		{input: "zzzz", message: "is not hexadecimal"},
		{input: "0x0x13", message: "is not hexadecimal"},
		{input: "13 05", message: "is not hexadecimal"},
		{input: "-13", message: "is not hexadecimal"},
		{input: "123456789", message: "does not fit in 32 bits"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Normalize(tt.input)
			assert.ErrorIs(t, err, ErrMalformedWord)
			assert.ErrorContains(t, err, tt.message)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"0x13", "00100513", "4501", "abc", "0x10000", "0XFFFFFFFF", "3", "0x0000"}
	for _, input := range inputs {
		first, err := Normalize(input)
		require.NoError(t, err, input)

		second, err := Normalize(first.String())
		require.NoError(t, err, input)
		assert.Equal(t, first, second, input)
		assert.Equal(t, first.String(), second.String(), input)
	}
}

func TestWordFits(t *testing.T) {
	assert.True(t, Word{Value: 0xffff, Width: Width16}.Fits())
	assert.False(t, Word{Value: 0x10000, Width: Width16}.Fits())
	assert.True(t, Word{Value: 0xffffffff, Width: Width32}.Fits())
	assert.Equal(t, 2, Word{Width: Width16}.Size())
	assert.Equal(t, 4, Word{Width: Width32}.Size())
}

func TestWidthDerivationsAgree(t *testing.T) {
	for v := uint32(0); v < 0x10000; v += 7 {
		assert.Equal(t, widthOfHalfword(uint16(v)), widthOfValue(v))
	}
}
