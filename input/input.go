// Package input decides whether user supplied text is a byte stream or a list of hex words.
package input

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrEmptyInput    = errors.New("please enter input")
	ErrInvalidFormat = errors.New("invalid hexadecimal format")
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	byteStreamRe = regexp.MustCompile(`^[0-9a-fA-F]{2}( [0-9a-fA-F]{2})*$`)
	hexLineRe    = regexp.MustCompile(`^(0x|0X)?[0-9a-fA-F]+$`)
)

// Format is the shape of a valid input.
type Format string

const (
	FormatByteStream Format = "byteStream"
	FormatHex        Format = "hex"
)

// Outcome is the result of classifying an input.
type Outcome struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Format  Format `json:"format,omitempty"`
	Err     error  `json:"-"`
}

// Classify inspects text and reports its format. The check is advisory: the
// conversion path validates every unit again and can still fail per line.
func Classify(text string) Outcome {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return invalid(ErrEmptyInput)
	}

	if byteStreamRe.MatchString(whitespaceRe.ReplaceAllString(trimmed, " ")) {
		return Outcome{Valid: true, Message: "byte stream format", Format: FormatByteStream}
	}

	lines := Lines(text)
	for _, line := range lines {
		if !hexLineRe.MatchString(line) {
			return invalid(ErrInvalidFormat)
		}
	}

	message := fmt.Sprintf("%d instructions", len(lines))
	if len(lines) == 1 {
		message = "1 instruction"
	}
	return Outcome{Valid: true, Message: message, Format: FormatHex}
}

// Lines splits text on newlines and returns the trimmed non-blank lines.
func Lines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func invalid(err error) Outcome {
	return Outcome{Message: err.Error(), Err: err}
}
