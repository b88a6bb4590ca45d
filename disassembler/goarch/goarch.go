// Package goarch disassembles RISC-V words in process with golang.org/x/arch.
package goarch

import (
	"bytes"
	"strings"

	"golang.org/x/arch/riscv64/riscv64asm"

	"github.com/ChainSafe/rvhex/disassembler"
)

type GoArch struct {
	Syntax disassembler.Syntax
}

func New(syntax disassembler.Syntax) *GoArch {
	return &GoArch{Syntax: syntax}
}

func (g *GoArch) Disassemble(word string) (string, error) {
	w, err := disassembler.Prepare(word)
	if err != nil {
		return "", err
	}

	inst, err := riscv64asm.Decode(w.Bytes())
	if err != nil || inst.Len != w.Size() {
		return "", disassembler.Unsupported(w)
	}

	var text string
	switch g.Syntax {
	case disassembler.SyntaxPlan9:
		text = riscv64asm.GoSyntax(inst, 0, noSymbols, bytes.NewReader(w.Bytes()))
	default:
		text = abiNames(riscv64asm.GNUSyntax(inst))
	}
	return strings.TrimSpace(text), nil
}

func noSymbols(uint64) (string, uint64) {
	return "", 0
}
