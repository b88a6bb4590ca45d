package opcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// widthOfValue derives the instruction width from an already assembled word.
func widthOfValue(v uint32) Width {
	if v&lengthMask == lengthMask {
		return Width32
	}
	return Width16
}

// Normalize parses a hex word, with or without a 0x prefix, and tags it as a
// 16-bit or 32-bit instruction from the low bits of its value.
func Normalize(token string) (Word, error) {
	digits := strings.TrimSpace(token)
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	if digits == "" {
		return Word{}, fmt.Errorf("%w: empty hex word %q", ErrMalformedWord, token)
	}
	// keep a whole number of bytes
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Word{}, fmt.Errorf("%w: %q does not fit in 32 bits", ErrMalformedWord, token)
		}
		return Word{}, fmt.Errorf("%w: %q is not hexadecimal", ErrMalformedWord, token)
	}

	v := uint32(value)
	return Word{Value: v, Width: widthOfValue(v)}, nil
}
