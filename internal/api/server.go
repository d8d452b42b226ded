// Package api serves decoded demos over HTTP.
package api

import (
	"time"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/hldemo/internal/logger"
	"github.com/samcharles93/hldemo/internal/store"
)

// Defaults applied by NewServer to zero Options fields.
const (
	DefaultMaxUploadBytes = 64 << 20
	DefaultFrameLimit     = 100
)

// Options tunes the server.
type Options struct {
	// Workers bounds concurrent frame-stream decoding per upload.
	Workers int
	// MaxUploadBytes caps the size of an uploaded demo.
	MaxUploadBytes int64
	// FrameLimit is the page size used when a frames request has no limit.
	FrameLimit int
}

type Server struct {
	store *store.Store
	log   logger.Logger
	opts  Options
	clock func() time.Time
}

func NewServer(st *store.Store, log logger.Logger, opts Options) *Server {
	if st == nil {
		st = store.New(0)
	}
	if log == nil {
		log = logger.Discard()
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if opts.FrameLimit <= 0 {
		opts.FrameLimit = DefaultFrameLimit
	}
	return &Server{
		store: st,
		log:   log,
		opts:  opts,
		clock: time.Now,
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/demos", s.handleUpload)
	e.GET("/v1/demos", s.handleList)
	e.GET("/v1/demos/:id", s.handleGet)
	e.DELETE("/v1/demos/:id", s.handleDelete)
	e.GET("/v1/demos/:id/entries/:entry/frames", s.handleFrames)
}
