package request

import (
	"go.uber.org/zap/zapcore"
)

// Request is the structured form of a request line.
// HasQuery is true whenever the target contained a '?', even if
// nothing followed it.
type Request struct {
	Method   Method
	Path     string
	RawQuery string
	HasQuery bool
}

// Query returns the raw query string and whether one was present.
func (r *Request) Query() (string, bool) {
	return r.RawQuery, r.HasQuery
}

// MarshalLogObject lets the request be logged with zap.Object.
func (r *Request) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("method", r.Method.String())
	enc.AddString("path", r.Path)
	if r.HasQuery {
		enc.AddString("query", r.RawQuery)
	}
	return nil
}
