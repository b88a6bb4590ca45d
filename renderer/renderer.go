package renderer

import (
	"io"

	"github.com/ChainSafe/rvhex/converter"
)

// Renderer defines the interface for rendering conversion results in different formats.
type Renderer interface {
	// Render writes the result in the desired format to the provided writer.
	Render(res *converter.Result, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text").
	Format() string
}
