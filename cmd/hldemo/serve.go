package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/hldemo/internal/api"
	"github.com/samcharles93/hldemo/internal/logger"
	"github.com/samcharles93/hldemo/internal/store"
)

func serveCmd() *cli.Command {
	var (
		addr        string
		readTimeout time.Duration
		maxUpload   int64
		frameLimit  int
		maxDemos    int
	)

	flags := append(decodeFlags(),
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "listen address",
			Value:       "127.0.0.1:8080",
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "read-timeout",
			Usage:       "read header timeout",
			Value:       30 * time.Second,
			Destination: &readTimeout,
		},
		&cli.Int64Flag{
			Name:        "max-upload-bytes",
			Usage:       "largest accepted demo upload",
			Value:       api.DefaultMaxUploadBytes,
			Destination: &maxUpload,
		},
		&cli.IntFlag{
			Name:        "frame-limit",
			Usage:       "default page size of frame listings",
			Value:       api.DefaultFrameLimit,
			Destination: &frameLimit,
		},
		&cli.IntFlag{
			Name:        "max-demos",
			Usage:       "demos kept in memory before the oldest is evicted (0 keeps all)",
			Value:       64,
			Destination: &maxDemos,
		},
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the demo inspection REST API",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			applyServeConfig(cmd, configFromContext(ctx), &addr, &maxUpload, &frameLimit)

			server := api.NewServer(store.New(maxDemos), log.With("component", "api"), api.Options{
				Workers:        workers,
				MaxUploadBytes: maxUpload,
				FrameLimit:     frameLimit,
			})
			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			server.Register(e)

			log.Info("starting server", "address", addr, "workers", workers, "max_upload_bytes", maxUpload)
			sc := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}
