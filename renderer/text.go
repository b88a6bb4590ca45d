// Package renderer provides a way to render conversion results in different formats.
package renderer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/term"

	"github.com/ChainSafe/rvhex/converter"
	"github.com/ChainSafe/rvhex/profile"
)

const (
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// ColorMode controls syntax highlighting of the text report.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode maps a flag value to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(s)); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color mode: %s", s)
	}
}

// Enabled reports whether output written to w should be colored.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// TextRenderer formats the conversion result as aligned rows.
type TextRenderer struct {
	profile *profile.Profile
	color   ColorMode
	header  bool
}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer(profile *profile.Profile, color ColorMode) Renderer {
	return &TextRenderer{profile: profile, color: color, header: true}
}

// NewRowRenderer creates a TextRenderer that prints only the rows, for
// streaming one small result after another.
func NewRowRenderer(profile *profile.Profile, color ColorMode) Renderer {
	return &TextRenderer{profile: profile, color: color}
}

// Render writes the report to output.
func (r *TextRenderer) Render(res *converter.Result, output io.Writer) error {
	if res == nil {
		return nil
	}
	colored := r.color.Enabled(output)

	width := 0
	for _, entry := range res.Entries {
		width = max(width, len(entry.Input))
	}

	var report strings.Builder
	if r.header {
		report.WriteString("==============================\n")
		report.WriteString("🔍 RISC-V Disassembly\n")
		report.WriteString("==============================\n")
		report.WriteString(fmt.Sprintf("🖥 Profile: %s (rv%d)\n", r.profile.Name, r.profile.XLEN))
		report.WriteString(fmt.Sprintf("⚙️ Disassembler: %s, %s syntax\n", r.profile.Disassembler, r.profile.Syntax))
		report.WriteString(fmt.Sprintf("📥 Input format: %s\n", res.Format))
		report.WriteString("------------------------------\n")
	}

	for _, entry := range res.Entries {
		report.WriteString(fmt.Sprintf("%-*s  %s\n", width, entry.Input, r.output(entry, colored)))
	}

	if r.header {
		report.WriteString("------------------------------\n")
		report.WriteString(fmt.Sprintf("ℹ️ Instructions: %d\n", len(res.Entries)-res.Failures()))
		report.WriteString(fmt.Sprintf("❗ Errors: %d\n", res.Failures()))
	}

	_, err := output.Write([]byte(report.String()))
	return err
}

func (r *TextRenderer) output(entry converter.Entry, colored bool) string {
	text := entry.Output()
	if !colored {
		return text
	}
	if entry.Failed() {
		return ansiRed + text + ansiReset
	}
	return highlight(text)
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return "text"
}

// highlight colors one line of assembly for a terminal. On any failure the
// text is returned unchanged.
func highlight(code string) string {
	lexer := lexers.Get("gas")
	if lexer == nil {
		return code
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	// lexers may append a newline to the last token
	return strings.ReplaceAll(buf.String(), "\n", "")
}
