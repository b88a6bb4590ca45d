// Package disassembler defines the boundary to the tools that turn a
// normalized instruction word into assembly text.
package disassembler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/rvhex/opcode"
)

// ErrorPrefix marks disassembly output that describes a failure.
const ErrorPrefix = "Error:"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalid16Bit       = errors.New("invalid 16-bit instruction")
	ErrUnsupported16Bit   = errors.New("unsupported 16-bit instruction")
	ErrUnsupported32Bit   = errors.New("unsupported 32-bit instruction")
	ErrUnsupportedBackend = errors.New("disassembler not supported")
)

// Disassembler turns one instruction word, given in canonical text form, into assembly text.
type Disassembler interface {
	Disassemble(word string) (string, error)
}

type Type int64

const (
	TypeGoArch Type = iota + 1
	TypeObjdump
)

func (t Type) String() string {
	switch t {
	case TypeGoArch:
		return "goarch"
	case TypeObjdump:
		return "objdump"
	default:
		return fmt.Sprintf("Type(%d)", int64(t))
	}
}

// ParseType maps a back end name to its Type. An empty name selects goarch.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "", "goarch":
		return TypeGoArch, nil
	case "objdump":
		return TypeObjdump, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedBackend, name)
	}
}

// Syntax selects the assembly dialect of the output.
type Syntax int64

const (
	SyntaxGNU Syntax = iota + 1
	SyntaxPlan9
)

func (s Syntax) String() string {
	switch s {
	case SyntaxGNU:
		return "gnu"
	case SyntaxPlan9:
		return "plan9"
	default:
		return fmt.Sprintf("Syntax(%d)", int64(s))
	}
}

// ParseSyntax maps a dialect name to its Syntax. An empty name selects gnu.
func ParseSyntax(name string) (Syntax, error) {
	switch strings.ToLower(name) {
	case "", "gnu":
		return SyntaxGNU, nil
	case "plan9", "go":
		return SyntaxPlan9, nil
	default:
		return 0, fmt.Errorf("unknown syntax: %s", name)
	}
}

// Prepare parses a canonical word and rejects values that cannot be encoded
// in their tagged width.
func Prepare(word string) (opcode.Word, error) {
	w, err := opcode.Normalize(word)
	if err != nil {
		return opcode.Word{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if !w.Fits() {
		return opcode.Word{}, ErrInvalid16Bit
	}
	return w, nil
}

// Unsupported returns the error for a word no decoder understands.
func Unsupported(w opcode.Word) error {
	if w.Width == opcode.Width16 {
		return ErrUnsupported16Bit
	}
	return ErrUnsupported32Bit
}

// ErrorText renders err the way failed disassembly is shown to users.
func ErrorText(err error) string {
	return fmt.Sprintf("%s %s", ErrorPrefix, err)
}

// IsErrorText reports whether a disassembly string describes a failure.
func IsErrorText(s string) bool {
	return strings.HasPrefix(s, ErrorPrefix)
}
