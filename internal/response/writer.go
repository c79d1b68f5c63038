package response

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrStatusWritten  = errors.New("status line already written")
	ErrNoStatusLine   = errors.New("must write status line before headers")
	ErrHeadersMissing = errors.New("must write headers before body")
)

// Header is a single response header line.
type Header struct {
	Name  string
	Value string
}

// writerState tracks what's been written so far
type writerState int

const (
	stateStart writerState = iota
	stateStatusWritten
	stateHeadersWritten
	stateBodyWritten
)

// Writer writes an HTTP response to an io.Writer in order:
// status line, header block, body.
type Writer struct {
	w          io.Writer
	state      writerState
	statusCode StatusCode
	written    int
	hadError   bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:     w,
		state: stateStart,
	}
}

func (w *Writer) WriteStatusLine(code StatusCode) error {
	if w.state != stateStart {
		return ErrStatusWritten
	}

	statusLine := fmt.Sprintf("HTTP/1.1 %d %s\r\n", code, StatusText(code))
	if err := w.write([]byte(statusLine)); err != nil {
		return err
	}

	w.statusCode = code
	w.state = stateStatusWritten
	return nil
}

// WriteHeaders writes the given headers followed by the blank line
// that ends the header block. With no headers only the blank line
// is written.
func (w *Writer) WriteHeaders(headers ...Header) error {
	if w.state != stateStatusWritten {
		return ErrNoStatusLine
	}

	for _, h := range headers {
		if err := w.write([]byte(h.Name + ": " + h.Value + "\r\n")); err != nil {
			return err
		}
	}

	if err := w.write([]byte("\r\n")); err != nil {
		return err
	}

	w.state = stateHeadersWritten
	return nil
}

func (w *Writer) WriteBody(data []byte) error {
	if w.state != stateHeadersWritten {
		return ErrHeadersMissing
	}

	if len(data) > 0 {
		if err := w.write(data); err != nil {
			return err
		}
	}

	w.state = stateBodyWritten
	return nil
}

func (w *Writer) write(p []byte) error {
	n, err := w.w.Write(p)
	w.written += n
	if err != nil {
		w.hadError = true
		return err
	}
	return nil
}

func (w *Writer) HadError() bool {
	return w.hadError
}

func (w *Writer) StatusCode() StatusCode {
	return w.statusCode
}

// BytesWritten reports how many bytes reached the underlying writer.
func (w *Writer) BytesWritten() int {
	return w.written
}
