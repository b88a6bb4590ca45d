package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/rvhex/input"
)

func CreateValidateCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "validate",
		Usage:       "Checks whether the input is a byte stream or a list of hex words",
		Description: "Classifies the input without disassembling it. Exits with status 1 when the input is invalid",
		ArgsUsage:   "[file|-]",
		Action:      action,
		Flags: []cli.Flag{
			FormatFlag,
		},
	}
}

var ValidateCommand = CreateValidateCommand(Validate)

func Validate(ctx *cli.Context) error {
	text, err := readInput(ctx)
	if err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}
	outcome := input.Classify(text)

	switch format := ctx.String(FormatFlag.Name); format {
	case "json":
		if err := json.NewEncoder(ctx.App.Writer).Encode(outcome); err != nil {
			return err
		}
	case "text":
		if outcome.Valid {
			if _, err := fmt.Fprintf(ctx.App.Writer, "valid: %s\n", outcome.Message); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("invalid format: %s", format)
	}

	if !outcome.Valid {
		return cli.Exit(fmt.Sprintf("invalid: %s", outcome.Message), 1)
	}
	return nil
}
