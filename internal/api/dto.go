package api

import (
	"time"

	"github.com/samcharles93/hldemo/internal/store"
	"github.com/samcharles93/hldemo/internal/summary"
)

type DemoResponse struct {
	ID           string       `json:"id"`
	Object       string       `json:"object"`
	Name         string       `json:"name,omitempty"`
	Size         int          `json:"size"`
	UploadedAt   int64        `json:"uploaded_at"`
	MetadataOnly bool         `json:"metadata_only"`
	Summary      summary.Demo `json:"summary"`
}

type DemoListItem struct {
	ID           string `json:"id"`
	Object       string `json:"object"`
	Name         string `json:"name,omitempty"`
	Size         int    `json:"size"`
	UploadedAt   int64  `json:"uploaded_at"`
	MetadataOnly bool   `json:"metadata_only"`
	MapName      string `json:"map_name"`
	Entries      int    `json:"entries"`
}

type DemoListResponse struct {
	Object string         `json:"object"`
	Data   []DemoListItem `json:"data"`
}

type FramesResponse struct {
	Object string          `json:"object"`
	DemoID string          `json:"demo_id"`
	Entry  int             `json:"entry"`
	Total  int             `json:"total"`
	Offset int             `json:"offset"`
	Limit  int             `json:"limit"`
	Data   []summary.Frame `json:"data"`
}

type DeleteResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

type ErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	// Set for decode failures only.
	Region string   `json:"region,omitempty"`
	Entry  *int     `json:"entry,omitempty"`
	Offset *int64   `json:"offset,omitempty"`
	Causes []string `json:"causes,omitempty"`
}

func demoResponse(rec *store.Record) DemoResponse {
	return DemoResponse{
		ID:           rec.ID.String(),
		Object:       "demo",
		Name:         rec.Name,
		Size:         len(rec.Data),
		UploadedAt:   unixOrZero(rec.UploadedAt),
		MetadataOnly: rec.MetadataOnly,
		Summary:      summary.Build(rec.Demo, !rec.MetadataOnly),
	}
}

func listItem(rec *store.Record) DemoListItem {
	return DemoListItem{
		ID:           rec.ID.String(),
		Object:       "demo",
		Name:         rec.Name,
		Size:         len(rec.Data),
		UploadedAt:   unixOrZero(rec.UploadedAt),
		MetadataOnly: rec.MetadataOnly,
		MapName:      rec.Demo.Header.MapNameString(),
		Entries:      len(rec.Demo.Directory.Entries),
	}
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
