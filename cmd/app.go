// Package cmd defines all the commands for the cli
package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/rvhex/logging"
)

var LogLevelFlag = &cli.StringFlag{
	Name:    "log-level",
	Usage:   "Log level. Options: debug, info, warn, error",
	Value:   "info",
	EnvVars: []string{logging.LevelEnv},
}

// NewApp assembles the rvhex command line application.
func NewApp(name string) *cli.App {
	app := cli.NewApp()
	app.Name = name
	app.Usage = "RISC-V machine code normalizer and disassembler"
	app.Description = "Splits raw byte streams and hex words into RISC-V instruction words and disassembles them"
	app.Flags = []cli.Flag{LogLevelFlag}
	app.Commands = []*cli.Command{
		ConvertCommand,
		ValidateCommand,
		FollowCommand,
		SchemaCommand,
	}
	return app
}
