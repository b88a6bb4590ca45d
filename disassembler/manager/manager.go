package manager

import (
	"github.com/ChainSafe/rvhex/disassembler"
	"github.com/ChainSafe/rvhex/disassembler/goarch"
	"github.com/ChainSafe/rvhex/disassembler/objdump"
	"github.com/ChainSafe/rvhex/profile"
)

// NewDisassembler builds the back end the profile asks for.
func NewDisassembler(prof *profile.Profile) (disassembler.Disassembler, error) {
	if err := prof.Validate(); err != nil {
		return nil, err
	}
	typ, err := disassembler.ParseType(prof.Disassembler)
	if err != nil {
		return nil, err
	}
	syntax, err := disassembler.ParseSyntax(prof.Syntax)
	if err != nil {
		return nil, err
	}

	switch typ {
	case disassembler.TypeGoArch:
		return goarch.New(syntax), nil
	case disassembler.TypeObjdump:
		return objdump.New(prof.Objdump, prof.XLEN), nil
	default:
		return nil, disassembler.ErrUnsupportedBackend
	}
}
