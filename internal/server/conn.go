package server

import (
	"errors"
	"io"
	"net"
	"strings"

	"github.com/kjk/betterguid"
	"go.uber.org/zap"

	"github.com/Brownie44l1/reqline/internal/request"
	"github.com/Brownie44l1/reqline/internal/response"
)

// serveConn reads one buffer from conn, logs what it parsed and always
// answers with the static reply. conn is closed on every path.
func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()

	s.metrics.Connections.Add(1)
	log := s.logger.With(
		zap.String("conn_id", betterguid.New()),
		zap.Stringer("remote", conn.RemoteAddr()),
	)

	buf := s.buffers.get()
	defer s.buffers.put(buf)

	// A single read; EOF with no data is treated as an empty request.
	n, err := conn.Read(buf)
	if err != nil && !(errors.Is(err, io.EOF) && n == 0) {
		s.metrics.ReadErrors.Add(1)
		log.Error("failed to read from connection", zap.Error(err))
		return
	}

	raw := decodeLossy(buf[:n])

	req, err := request.Parse(raw)
	if err != nil {
		s.metrics.ParseErrors.Add(1)
		log.Warn("failed to parse request", zap.Error(err), zap.String("raw", raw))
	} else {
		s.metrics.Parsed.Add(1)
		log.Info("parsed request", zap.Object("request", req))
	}

	// The reply does not depend on the parse outcome.
	w := response.NewWriter(conn)
	if err := w.WriteStatic(); err != nil {
		s.metrics.WriteErrors.Add(1)
		log.Error("failed to write response", zap.Error(err))
	}
}

// decodeLossy turns b into a string, replacing each run of invalid
// UTF-8 bytes with U+FFFD.
func decodeLossy(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
