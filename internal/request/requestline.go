package request

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyRequest  = errors.New("empty request")
	ErrMissingMethod = errors.New("missing method")
	ErrMissingPath   = errors.New("missing path")
)

// Parse reads the request line out of raw: METHOD TARGET [anything else]
// Only the first line is looked at. Tokens after the target are ignored.
func Parse(raw string) (*Request, error) {
	if raw == "" {
		return nil, ErrEmptyRequest
	}

	line := raw
	if idx := strings.IndexByte(raw, '\n'); idx != -1 {
		line = raw[:idx]
	}
	line = strings.TrimSuffix(line, "\r")

	// Split into parts: METHOD TARGET ...
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil, ErrMissingMethod
	}
	if len(parts) == 1 {
		return nil, ErrMissingPath
	}

	method, err := ParseMethod(parts[0])
	if err != nil {
		return nil, fmt.Errorf("parse request line: %w", err)
	}

	path, query, hasQuery := SplitTarget(parts[1])

	return &Request{
		Method:   method,
		Path:     path,
		RawQuery: query,
		HasQuery: hasQuery,
	}, nil
}

// SplitTarget splits a request target on its first '?'.
// An empty target becomes "/". An empty path before '?' stays empty.
func SplitTarget(target string) (path, rawQuery string, hasQuery bool) {
	if target == "" {
		return "/", "", false
	}
	path, rawQuery, hasQuery = strings.Cut(target, "?")
	return path, rawQuery, hasQuery
}
