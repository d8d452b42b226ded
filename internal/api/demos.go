package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/hldemo/internal/summary"
	"github.com/samcharles93/hldemo/pkg/hldemo"
)

func (s *Server) handleUpload(c *echo.Context) error {
	data, err := readBody(c.Request().Body, s.opts.MaxUploadBytes)
	if err != nil {
		if errors.Is(err, errBodyTooLarge) {
			return writeError(c, http.StatusRequestEntityTooLarge, ErrorBody{
				Message: fmt.Sprintf("demo exceeds %d bytes", s.opts.MaxUploadBytes),
				Type:    "invalid_request_error",
				Code:    "too_large",
			})
		}
		return writeBadRequest(c, "read body: "+err.Error())
	}
	if len(data) == 0 {
		return writeBadRequest(c, "request body is empty")
	}

	metadataOnly := boolParam(c, "metadata_only")
	log := s.log.With("size", len(data), "metadata_only", metadataOnly)

	start := time.Now()
	demo, err := hldemo.DecodeWithOptions(data, hldemo.Options{
		SkipFrames: metadataOnly,
		Workers:    s.opts.Workers,
	})
	if err != nil {
		log.Warn("rejected demo upload", "error", err)
		return writeDecodeError(c, err)
	}

	rec := s.store.Put(c.QueryParam("name"), data, demo, metadataOnly, s.clock())
	log.Info("stored demo", "id", rec.ID, "entries", len(demo.Directory.Entries), "took", time.Since(start))
	return writeJSON(c, http.StatusCreated, demoResponse(rec))
}

func (s *Server) handleList(c *echo.Context) error {
	recs := s.store.List()
	items := make([]DemoListItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, listItem(rec))
	}
	return writeJSON(c, http.StatusOK, DemoListResponse{Object: "list", Data: items})
}

func (s *Server) handleGet(c *echo.Context) error {
	rec, ok := s.store.Get(c.Param("id"))
	if !ok {
		return writeNotFound(c, "demo not found")
	}
	return writeJSON(c, http.StatusOK, demoResponse(rec))
}

func (s *Server) handleDelete(c *echo.Context) error {
	id := c.Param("id")
	if !s.store.Delete(id) {
		return writeNotFound(c, "demo not found")
	}
	return writeJSON(c, http.StatusOK, DeleteResponse{ID: id, Object: "demo", Deleted: true})
}

func (s *Server) handleFrames(c *echo.Context) error {
	rec, ok := s.store.Get(c.Param("id"))
	if !ok {
		return writeNotFound(c, "demo not found")
	}
	if rec.MetadataOnly {
		return writeError(c, http.StatusConflict, ErrorBody{
			Message: "demo was uploaded with metadata_only; frames were not decoded",
			Type:    "invalid_request_error",
			Code:    "frames_not_decoded",
		})
	}

	entries := rec.Demo.Directory.Entries
	entry, err := strconv.Atoi(c.Param("entry"))
	if err != nil {
		return writeBadRequest(c, "entry must be an integer")
	}
	if entry < 0 || entry >= len(entries) {
		return writeNotFound(c, fmt.Sprintf("entry %d not found (demo has %d entries)", entry, len(entries)))
	}

	offset, err := intParam(c, "offset", 0)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	limit, err := intParam(c, "limit", s.opts.FrameLimit)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	e := &entries[entry]
	return writeJSON(c, http.StatusOK, FramesResponse{
		Object: "list",
		DemoID: rec.ID.String(),
		Entry:  entry,
		Total:  len(e.Frames),
		Offset: offset,
		Limit:  limit,
		Data:   summary.Frames(e, offset, limit),
	})
}

var errBodyTooLarge = errors.New("body too large")

func readBody(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, errBodyTooLarge
	}
	return data, nil
}

func boolParam(c *echo.Context, name string) bool {
	q := c.QueryParam(name)
	return q == "1" || strings.EqualFold(q, "true")
}

func intParam(c *echo.Context, name string, def int) (int, error) {
	q := c.QueryParam(name)
	if q == "" {
		return def, nil
	}
	v, err := strconv.Atoi(q)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return v, nil
}
