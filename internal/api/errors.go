package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/hldemo/pkg/hldemo"
)

func writeJSON(c *echo.Context, status int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	res.WriteHeader(status)
	_, err = res.Write(b)
	return err
}

func writeError(c *echo.Context, status int, body ErrorBody) error {
	return writeJSON(c, status, map[string]any{"error": body})
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, ErrorBody{Message: msg, Type: "invalid_request_error"})
}

func writeNotFound(c *echo.Context, msg string) error {
	return writeError(c, http.StatusNotFound, ErrorBody{Message: msg, Type: "not_found_error"})
}

// writeDecodeError answers 422 with the failing region and every message in
// the cause chain.
func writeDecodeError(c *echo.Context, err error) error {
	body := ErrorBody{
		Message: err.Error(),
		Type:    "decode_error",
		Code:    decodeErrorCode(err),
		Causes:  causeChain(nil, err),
	}
	if de, ok := errors.AsType[*hldemo.DecodeError](err); ok {
		body.Region = de.Region.String()
		if de.Entry >= 0 {
			entry := de.Entry
			body.Entry = &entry
		}
		if de.Region != hldemo.RegionHeader {
			offset := de.Offset
			body.Offset = &offset
		}
	}
	return writeError(c, http.StatusUnprocessableEntity, body)
}

// decodeErrorCode names the most specific sentinel err matches. A truncated
// frame stream matches both ErrMissingTerminator and ErrNeedMoreBytes; the
// former wins.
func decodeErrorCode(err error) string {
	codes := []struct {
		target error
		code   string
	}{
		{hldemo.ErrInvalidMagic, "invalid_magic"},
		{hldemo.ErrUnsupportedProtocol, "unsupported_protocol"},
		{hldemo.ErrInvalidEntryCount, "invalid_entry_count"},
		{hldemo.ErrInvalidFrameType, "invalid_frame_type"},
		{hldemo.ErrInvalidLength, "invalid_length"},
		{hldemo.ErrMissingTerminator, "missing_terminator"},
		{hldemo.ErrNeedMoreBytes, "need_more_bytes"},
	}
	for _, c := range codes {
		if errors.Is(err, c.target) {
			return c.code
		}
	}
	return "decode_failed"
}

func causeChain(out []string, err error) []string {
	if err == nil {
		return out
	}
	out = append(out, err.Error())
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return causeChain(out, u.Unwrap())
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			out = causeChain(out, e)
		}
	}
	return out
}
