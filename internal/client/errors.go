package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrUnauthorized is returned for a 401. The caller should drop its token.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a failed call with no per-field detail.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// ValidationError carries the per-field errors returned by the server.
type ValidationError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return "Submission failed: " + strings.Join(parts, "; ")
}

// decodeError turns a non-2xx body into an error. Bodies of the form
// {"errors": {...}} and bare per-field objects both become ValidationErrors.
func decodeError(status int, body []byte) error {
	if status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = http.StatusText(status)
		}
		return &APIError{StatusCode: status, Message: msg}
	}

	message := stringField(obj, "message")
	if message == "" {
		message = stringField(obj, "error")
	}
	if message == "" {
		message = stringField(obj, "detail")
	}

	fields := map[string][]string{}
	if raw, ok := obj["errors"]; ok {
		var nested map[string]json.RawMessage
		if json.Unmarshal(raw, &nested) == nil {
			collectFields(fields, nested)
		}
	} else if status == http.StatusBadRequest || status == http.StatusUnprocessableEntity {
		rest := make(map[string]json.RawMessage, len(obj))
		for k, v := range obj {
			switch k {
			case "status", "message", "error", "detail":
				continue
			}
			rest[k] = v
		}
		collectFields(fields, rest)
	}
	if len(fields) > 0 {
		return &ValidationError{StatusCode: status, Message: message, Fields: fields}
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: message}
}

func stringField(obj map[string]json.RawMessage, key string) string {
	raw, ok := obj[key]
	if !ok {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// collectFields accepts either a list of strings or a single string per key.
func collectFields(dst map[string][]string, src map[string]json.RawMessage) {
	for k, raw := range src {
		var list []string
		if json.Unmarshal(raw, &list) == nil {
			if len(list) > 0 {
				dst[k] = list
			}
			continue
		}
		var one string
		if json.Unmarshal(raw, &one) == nil && one != "" {
			dst[k] = []string{one}
		}
	}
}
