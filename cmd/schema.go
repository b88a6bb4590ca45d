package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/rvhex/converter"
	"github.com/ChainSafe/rvhex/profile"
)

var SchemaTypeFlag = &cli.StringFlag{
	Name:     "type",
	Usage:    "schema to print. Options: report, profile",
	Required: false,
	Value:    "report",
}

func CreateSchemaCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "schema",
		Usage:       "Prints the JSON schema of the JSON report or of the profile",
		Description: "Prints the JSON schema of the JSON report or of the profile",
		Action:      action,
		Flags: []cli.Flag{
			SchemaTypeFlag,
		},
	}
}

var SchemaCommand = CreateSchemaCommand(Schema)

func Schema(ctx *cli.Context) error {
	reflector := new(jsonschema.Reflector)

	var schema *jsonschema.Schema
	switch typ := ctx.String(SchemaTypeFlag.Name); typ {
	case "report":
		schema = reflector.Reflect(&converter.Result{})
	case "profile":
		schema = reflector.Reflect(&profile.Profile{})
	default:
		return fmt.Errorf("invalid schema type: %s", typ)
	}

	bts, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	_, err = fmt.Fprintln(ctx.App.Writer, string(bts))
	return err
}
