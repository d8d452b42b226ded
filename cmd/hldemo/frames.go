package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/hldemo/pkg/hldemo"
)

func framesCmd() *cli.Command {
	var (
		entry int
		limit int
	)

	flags := append(decodeFlags(),
		&cli.IntFlag{
			Name:        "entry",
			Aliases:     []string{"e"},
			Usage:       "only dump this directory entry (-1 dumps all)",
			Value:       -1,
			Destination: &entry,
		},
		&cli.IntFlag{
			Name:        "limit",
			Aliases:     []string{"n"},
			Usage:       "frames printed per entry (0 prints all)",
			Destination: &limit,
		},
	)

	return &cli.Command{
		Name:      "frames",
		Usage:     "Dump the frames of every directory entry",
		ArgsUsage: "<demo>",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := configFromContext(ctx)
			applyDecodeConfig(cmd, cfg)
			if cfg.FrameLimit != nil && !cmd.IsSet("limit") {
				limit = *cfg.FrameLimit
			}

			path, err := demoArg(cmd)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			f, demo, err := loadDemo(ctx, path, hldemo.Options{Workers: workers})
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			defer func() { _ = f.Close() }()

			if err := printFrames(os.Stdout, demo, entry, limit); err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			return nil
		},
	}
}
