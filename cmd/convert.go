package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/rvhex/converter"
	"github.com/ChainSafe/rvhex/disassembler/manager"
	"github.com/ChainSafe/rvhex/logging"
	"github.com/ChainSafe/rvhex/profile"
	"github.com/ChainSafe/rvhex/renderer"
)

var (
	ProfileFlag = &cli.PathFlag{
		Name:     "profile",
		Usage:    "Path to the decoder profile config file",
		Required: false,
		EnvVars:  []string{"RVHEX_PROFILE"},
	}
	DisassemblerFlag = &cli.StringFlag{
		Name:     "disassembler",
		Usage:    "Disassembler back end, overrides the profile. Options: goarch, objdump",
		Required: false,
	}
	SyntaxFlag = &cli.StringFlag{
		Name:     "syntax",
		Usage:    "Assembly syntax, overrides the profile. Options: gnu, plan9",
		Required: false,
	}
	ObjdumpFlag = &cli.PathFlag{
		Name:     "objdump",
		Usage:    "objdump binary used by the objdump disassembler",
		Required: false,
		EnvVars:  []string{"RVHEX_OBJDUMP"},
	}
	LenientFlag = &cli.BoolFlag{
		Name:     "lenient",
		Usage:    "convert line by line even when the input is not a valid byte stream or hex list",
		Required: false,
	}
	FormatFlag = &cli.StringFlag{
		Name:     "format",
		Usage:    "format of the output. Options: json, text",
		Required: false,
		Value:    "text",
	}
	OutputPathFlag = &cli.PathFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Usage:    "output file path for the result. Default: stdout",
		Required: false,
	}
	ColorFlag = &cli.StringFlag{
		Name:     "color",
		Usage:    "highlight text output. Options: auto, always, never",
		Required: false,
		Value:    string(renderer.ColorAuto),
	}
)

func CreateConvertCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "convert",
		Usage:       "Converts a byte stream or hex words into disassembled instructions",
		Description: "Reads a file, or stdin when no file or '-' is given, and disassembles every instruction word in it",
		ArgsUsage:   "[file|-]",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			DisassemblerFlag,
			SyntaxFlag,
			ObjdumpFlag,
			LenientFlag,
			FormatFlag,
			OutputPathFlag,
			ColorFlag,
		},
	}
}

var ConvertCommand = CreateConvertCommand(Convert)

func Convert(ctx *cli.Context) error {
	logger, err := newLogger(ctx)
	if err != nil {
		return err
	}
	prof, err := loadProfile(ctx)
	if err != nil {
		return err
	}
	rend, err := newRenderer(ctx, prof, true)
	if err != nil {
		return err
	}
	dis, err := manager.NewDisassembler(prof)
	if err != nil {
		return fmt.Errorf("error creating disassembler: %w", err)
	}

	text, err := readInput(ctx)
	if err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}

	conv := converter.New(dis, converter.WithLogger(logger), converter.WithLenient(prof.Lenient))
	_, res, err := conv.Convert(converter.Idle, text)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	logger.Debug("converted input", "format", res.Format, "entries", len(res.Entries), "failures", res.Failures())

	if err := writeResult(ctx, res, rend); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	return nil
}

func newLogger(ctx *cli.Context) (*log.Logger, error) {
	return logging.New(ctx.App.ErrWriter, ctx.String(LogLevelFlag.Name))
}

// loadProfile reads the profile file, if any, and applies flag overrides.
func loadProfile(ctx *cli.Context) (*profile.Profile, error) {
	prof := profile.Default()
	if path := ctx.Path(ProfileFlag.Name); path != "" {
		var err error
		prof, err = profile.LoadProfile(path)
		if err != nil {
			return nil, fmt.Errorf("error loading profile: %w", err)
		}
	}

	if ctx.IsSet(DisassemblerFlag.Name) {
		prof.Disassembler = ctx.String(DisassemblerFlag.Name)
	}
	if ctx.IsSet(SyntaxFlag.Name) {
		prof.Syntax = ctx.String(SyntaxFlag.Name)
	}
	if ctx.IsSet(ObjdumpFlag.Name) {
		prof.Objdump = ctx.Path(ObjdumpFlag.Name)
	}
	if ctx.IsSet(LenientFlag.Name) {
		prof.Lenient = ctx.Bool(LenientFlag.Name)
	}
	if err := prof.Validate(); err != nil {
		return nil, fmt.Errorf("error loading profile: %w", err)
	}
	return prof, nil
}

// readInput returns the content of the file argument, or stdin.
func readInput(ctx *cli.Context) (string, error) {
	path := ctx.Args().First()
	if path == "" || path == "-" {
		data, err := io.ReadAll(ctx.App.Reader)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func newRenderer(ctx *cli.Context, prof *profile.Profile, header bool) (renderer.Renderer, error) {
	color, err := renderer.ParseColorMode(ctx.String(ColorFlag.Name))
	if err != nil {
		return nil, err
	}

	switch format := ctx.String(FormatFlag.Name); format {
	case "text":
		if !header {
			return renderer.NewRowRenderer(prof, color), nil
		}
		return renderer.NewTextRenderer(prof, color), nil
	case "json":
		return renderer.NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}

// writeResult outputs the result to the output flag's file, or the app writer.
func writeResult(ctx *cli.Context, res *converter.Result, rend renderer.Renderer) error {
	outputPath := ctx.Path(OutputPathFlag.Name)
	if outputPath == "" {
		return rend.Render(res, ctx.App.Writer)
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("unable to determine absolute path: %w", err)
	}
	output, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to open output file: %w", err)
	}
	defer func() {
		_ = output.Close()
	}()

	return rend.Render(res, output)
}
