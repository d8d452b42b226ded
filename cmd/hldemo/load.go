package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/hldemo/internal/demofile"
	"github.com/samcharles93/hldemo/internal/logger"
	"github.com/samcharles93/hldemo/pkg/hldemo"
)

// demoArg returns the demo path given as the first positional argument.
func demoArg(cmd *cli.Command) (string, error) {
	path := cmd.Args().First()
	if path == "" {
		return "", errors.New("error: no demo file given")
	}
	return path, nil
}

// loadDemo maps path and decodes it. The returned File must stay open while
// the Demo is in use, since decoded fields alias the mapping.
func loadDemo(ctx context.Context, path string, opts hldemo.Options) (*demofile.File, *hldemo.Demo, error) {
	log := logger.FromContext(ctx).With("path", path)

	f, err := demofile.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't open the file: %w", err)
	}

	start := time.Now()
	demo, err := hldemo.DecodeWithOptions(f.Bytes(), opts)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("couldn't parse the demo: %w", err)
	}
	log.Debug("decoded demo",
		"size", f.Size(),
		"mapped", f.Mapped(),
		"entries", len(demo.Directory.Entries),
		"metadata_only", opts.SkipFrames,
		"took", time.Since(start),
	)
	return f, demo, nil
}
