package renderer

import (
	"encoding/json"
	"io"

	"github.com/ChainSafe/rvhex/converter"
)

// JSONRenderer renders results in JSON format.
type JSONRenderer struct{}

// NewJSONRenderer creates a new instance of JSONRenderer.
func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

// Render writes res as a single JSON object: the detected input format and the
// entries in input order. Each entry has its input text, its width, and either
// a disassembly or an error. Width is omitted for lines that did not parse.
func (r *JSONRenderer) Render(res *converter.Result, output io.Writer) error {
	return json.NewEncoder(output).Encode(res)
}

// Format returns the format type.
func (r *JSONRenderer) Format() string {
	return "json"
}
