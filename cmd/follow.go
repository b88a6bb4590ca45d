package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nxadm/tail"
	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/rvhex/converter"
	"github.com/ChainSafe/rvhex/disassembler/manager"
)

var (
	FromStartFlag = &cli.BoolFlag{
		Name:     "from-start",
		Usage:    "convert the lines already in the file before following it",
		Required: false,
	}
	PollFlag = &cli.BoolFlag{
		Name:     "poll",
		Usage:    "poll the file for changes instead of using inotify",
		Required: false,
	}
)

func CreateFollowCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "follow",
		Usage:       "Converts lines as they are appended to a file",
		Description: "Follows a file like tail -f. Every appended line is converted on its own, so a byte stream must not be split across lines",
		ArgsUsage:   "<file>",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			DisassemblerFlag,
			SyntaxFlag,
			ObjdumpFlag,
			LenientFlag,
			FormatFlag,
			ColorFlag,
			FromStartFlag,
			PollFlag,
		},
	}
}

var FollowCommand = CreateFollowCommand(Follow)

func Follow(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errors.New("a file to follow is required")
	}

	logger, err := newLogger(ctx)
	if err != nil {
		return err
	}
	prof, err := loadProfile(ctx)
	if err != nil {
		return err
	}
	rend, err := newRenderer(ctx, prof, false)
	if err != nil {
		return err
	}
	dis, err := manager.NewDisassembler(prof)
	if err != nil {
		return fmt.Errorf("error creating disassembler: %w", err)
	}

	cfg := tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Poll:      ctx.Bool(PollFlag.Name),
		Logger:    tail.DiscardingLogger,
	}
	if !ctx.Bool(FromStartFlag.Name) {
		cfg.Location = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}
	t, err := tail.TailFile(path, cfg)
	if err != nil {
		return fmt.Errorf("unable to follow %s: %w", path, err)
	}
	defer t.Cleanup()
	logger.Info("following file", "path", path, "profile", prof.Name)

	conv := converter.New(dis, converter.WithLogger(logger), converter.WithLenient(prof.Lenient))
	state := converter.Idle
	for {
		select {
		case <-ctx.Context.Done():
			logger.Info("stopped following", "path", path)
			return t.Stop()
		case line, ok := <-t.Lines:
			if !ok {
				return t.Wait()
			}
			if line.Err != nil {
				logger.Warn("read error", "path", path, "err", line.Err)
				continue
			}
			if strings.TrimSpace(line.Text) == "" {
				continue
			}

			var res *converter.Result
			state, res, err = conv.Convert(state, line.Text)
			if err != nil {
				logger.Warn("line rejected", "line", line.Num, "err", err)
				continue
			}
			if err := rend.Render(res, ctx.App.Writer); err != nil {
				return fmt.Errorf("unable to write result: %w", err)
			}
		}
	}
}
