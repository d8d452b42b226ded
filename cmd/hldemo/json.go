package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/hldemo/internal/summary"
	"github.com/samcharles93/hldemo/pkg/hldemo"
)

func jsonCmd() *cli.Command {
	var (
		metadataOnly bool
		compact      bool
	)

	flags := append(decodeFlags(),
		&cli.BoolFlag{
			Name:        "metadata-only",
			Usage:       "skip frame streams",
			Destination: &metadataOnly,
		},
		&cli.BoolFlag{
			Name:        "compact",
			Usage:       "print JSON on one line",
			Destination: &compact,
		},
	)

	return &cli.Command{
		Name:      "json",
		Usage:     "Print a JSON summary of a demo",
		ArgsUsage: "<demo>",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyDecodeConfig(cmd, configFromContext(ctx))

			path, err := demoArg(cmd)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			f, demo, err := loadDemo(ctx, path, hldemo.Options{SkipFrames: metadataOnly, Workers: workers})
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			defer func() { _ = f.Close() }()

			out, err := summary.Marshal(summary.Build(demo, !metadataOnly), !compact)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: encode summary: %v", err), 1)
			}
			_, _ = os.Stdout.Write(append(out, '\n'))
			return nil
		},
	}
}
