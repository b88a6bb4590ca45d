package opcode

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// widthOfHalfword derives the instruction width from the first halfword of
// an instruction, before the rest of it is known.
func widthOfHalfword(half uint16) Width {
	if half&lengthMask == lengthMask {
		return Width32
	}
	return Width16
}

// SplitByteStream segments whitespace separated byte tokens, given in memory
// order, into instruction words. An empty stream yields no words.
func SplitByteStream(text string) ([]Word, error) {
	tokens := strings.Fields(strings.ReplaceAll(text, "\r\n", "\n"))
	if len(tokens) == 0 {
		return nil, nil
	}

	stream := make([]byte, 0, len(tokens))
	for _, token := range tokens {
		if len(token) != 2 {
			return nil, fmt.Errorf("%w: illegal byte token: %s", ErrMalformedByteStream, token)
		}
		b, err := hex.DecodeString(token)
		if err != nil {
			return nil, fmt.Errorf("%w: illegal byte token: %s", ErrMalformedByteStream, token)
		}
		stream = append(stream, b[0])
	}

	words := make([]Word, 0, len(stream)/2)
	for i := 0; i < len(stream); {
		if i+1 >= len(stream) {
			return nil, errIncomplete(i)
		}
		half := binary.LittleEndian.Uint16(stream[i : i+2])

		if widthOfHalfword(half) == Width32 {
			if i+3 >= len(stream) {
				return nil, errIncomplete(i)
			}
			words = append(words, Word{Value: binary.LittleEndian.Uint32(stream[i : i+4]), Width: Width32})
			i += 4
			continue
		}

		words = append(words, Word{Value: uint32(half), Width: Width16})
		i += 2
	}
	return words, nil
}

// SplitByteStreamText is SplitByteStream rendering each word in canonical text form.
func SplitByteStreamText(text string) ([]string, error) {
	words, err := SplitByteStream(text)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(words))
	for _, w := range words {
		lines = append(lines, w.String())
	}
	return lines, nil
}

func errIncomplete(offset int) error {
	return fmt.Errorf("%w: incomplete instruction, insufficient remaining bytes (at byte %d)", ErrMalformedByteStream, offset)
}
