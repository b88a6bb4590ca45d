package profile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ChainSafe/rvhex/disassembler"
)

var ErrInvalidProfile = errors.New("invalid profile")

// Profile represents the decoder configuration.
type Profile struct {
	Name         string `yaml:"name" json:"name" jsonschema:"title=Name,description=Profile name shown in reports"`
	XLEN         int    `yaml:"xlen" json:"xlen" jsonschema:"title=XLEN,description=Register width of the target,enum=32,enum=64"`
	Disassembler string `yaml:"disassembler" json:"disassembler" jsonschema:"title=Disassembler,description=Back end used to decode words,enum=goarch,enum=objdump"`
	Syntax       string `yaml:"syntax" json:"syntax" jsonschema:"title=Syntax,description=Assembly dialect of the output,enum=gnu,enum=plan9"`
	Objdump      string `yaml:"objdump,omitempty" json:"objdump,omitempty" jsonschema:"title=Objdump,description=Path to a RISC-V capable objdump"`
	Lenient      bool   `yaml:"lenient" json:"lenient" jsonschema:"title=Lenient,description=Convert line by line even when the input fails classification"`
}

// Default returns the profile used when no profile file is given. It decodes
// as RV64, so RV32-only compressed encodings such as 0x2001 (c.jal) decode as
// their RV64 meaning (c.addiw); profiles/rv32-objdump.yaml decodes as RV32.
func Default() *Profile {
	return &Profile{
		Name:         "rv64gc",
		XLEN:         64,
		Disassembler: disassembler.TypeGoArch.String(),
		Syntax:       disassembler.SyntaxGNU.String(),
	}
}

// LoadProfile loads a profile from a YAML file. Fields missing from the file keep their defaults.
func LoadProfile(filename string) (*Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}

	profile := Default()
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// Validate checks that the profile names a usable back end.
func (p *Profile) Validate() error {
	typ, err := disassembler.ParseType(p.Disassembler)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	syntax, err := disassembler.ParseSyntax(p.Syntax)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	if p.XLEN != 32 && p.XLEN != 64 {
		return fmt.Errorf("%w: xlen must be 32 or 64, got %d", ErrInvalidProfile, p.XLEN)
	}

	switch typ {
	case disassembler.TypeGoArch:
		if p.XLEN != 64 {
			return fmt.Errorf("%w: the goarch disassembler only decodes rv64", ErrInvalidProfile)
		}
	case disassembler.TypeObjdump:
		if syntax != disassembler.SyntaxGNU {
			return fmt.Errorf("%w: objdump only produces gnu syntax", ErrInvalidProfile)
		}
	}
	return nil
}
