package converter

import (
	"github.com/ChainSafe/rvhex/disassembler"
	"github.com/ChainSafe/rvhex/input"
	"github.com/ChainSafe/rvhex/opcode"
)

// Result holds one entry per input unit, in input order.
type Result struct {
	Format  input.Format `json:"format" jsonschema:"enum=byteStream,enum=hex"`
	Entries []Entry      `json:"entries"`
}

// Entry pairs one input unit with its disassembly or with the reason it failed.
type Entry struct {
	Input       string       `json:"input"`                 // canonical word, or the original line when it did not parse
	Width       opcode.Width `json:"width,omitempty"`       // 16 or 32, zero when the line did not parse
	Disassembly string       `json:"disassembly,omitempty"` // assembly text on success
	Error       string       `json:"error,omitempty"`       // failure description
}

// Failed reports whether the entry carries an error.
func (e Entry) Failed() bool {
	return e.Error != ""
}

// Output returns the disassembly, or the error marked with the error prefix.
func (e Entry) Output() string {
	if e.Failed() {
		return disassembler.ErrorPrefix + " " + e.Error
	}
	return e.Disassembly
}

// Failures counts the entries that carry an error.
func (r *Result) Failures() int {
	n := 0
	for _, e := range r.Entries {
		if e.Failed() {
			n++
		}
	}
	return n
}
