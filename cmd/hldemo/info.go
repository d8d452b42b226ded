package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/hldemo/pkg/hldemo"
)

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Print the header and directory of a demo without decoding frames",
		ArgsUsage: "<demo>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, err := demoArg(cmd)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			f, demo, err := loadDemo(ctx, path, hldemo.Options{SkipFrames: true})
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			defer func() { _ = f.Close() }()

			printDemo(os.Stdout, demo)
			return nil
		},
	}
}
