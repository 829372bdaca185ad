package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"tableside/internal/pkg/errs"
)

// Error carries the decoded backend error payload alongside the HTTP status.
type Error struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// FieldError returns the most specific message from the backend's structured
// validation payload, checking well-known fields in a fixed order before
// falling back to non-field errors.
func (e *Error) FieldError(fields ...string) string {
	for _, f := range fields {
		if msgs := e.Fields[f]; len(msgs) > 0 {
			return fmt.Sprintf("%s: %s", capitalize(f), msgs[0])
		}
	}
	if msgs := e.Fields["non_field_errors"]; len(msgs) > 0 {
		return msgs[0]
	}
	return e.Message
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// decodeError maps a non-2xx response to a marked sentinel error. The backend
// serves DRF-style payloads: either {"detail": "..."} or a map of field name
// to message list.
func decodeError(status int, body []byte) error {
	apiErr := &Error{StatusCode: status}

	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		apiErr.Message = detail.Detail
	} else {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err == nil {
			apiErr.Fields = make(map[string][]string, len(fields))
			for name, raw := range fields {
				var msgs []string
				if err := json.Unmarshal(raw, &msgs); err == nil {
					apiErr.Fields[name] = msgs
					continue
				}
				var msg string
				if err := json.Unmarshal(raw, &msg); err == nil {
					apiErr.Fields[name] = []string{msg}
				}
			}
		} else {
			var msg string
			if err := json.Unmarshal(body, &msg); err == nil {
				apiErr.Message = msg
			}
		}
	}

	switch {
	case status == http.StatusUnauthorized:
		return errs.Mark(apiErr, errs.ErrUnauthorized)
	case status == http.StatusNotFound:
		return errs.Mark(apiErr, errs.ErrNotFound)
	case status >= 400 && status < 500:
		return errs.Mark(apiErr, errs.ErrValidation)
	default:
		return errs.Mark(apiErr, errs.ErrUnavailable)
	}
}
