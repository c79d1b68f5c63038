package server

import (
	"errors"
	"net"
	"sync/atomic"

	"go.uber.org/zap"
)

var ErrNotListening = errors.New("server is not listening")

// Config holds listener settings.
type Config struct {
	Addr       string `mapstructure:"addr"`
	BufferSize int    `mapstructure:"buffer_size"`
}

func DefaultConfig() Config {
	return Config{
		Addr:       "127.0.0.1:8080",
		BufferSize: 1024,
	}
}

// Server accepts one connection at a time and services it completely
// before accepting the next.
type Server struct {
	cfg      Config
	logger   *zap.Logger
	listener net.Listener
	closed   atomic.Bool
	buffers  *bufferPool
	metrics  *Metrics
}

func New(cfg Config, logger *zap.Logger) *Server {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultConfig().BufferSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{
		cfg:     cfg,
		logger:  logger,
		buffers: newBufferPool(cfg.BufferSize),
		metrics: NewMetrics(),
	}
}

// Listen binds the configured address.
func (s *Server) Listen() error {
	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	s.listener = listener
	return nil
}

// Serve runs the accept loop on the calling goroutine until Close is
// called. Accept errors are logged and the loop keeps going.
func (s *Server) Serve() error {
	if s.listener == nil {
		return ErrNotListening
	}

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() {
				return nil
			}
			s.metrics.AcceptErrors.Add(1)
			s.logger.Error("failed to accept connection", zap.Error(err))
			continue
		}

		s.serveConn(conn)
	}
}

func (s *Server) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) Stats() MetricsSnapshot {
	return s.metrics.Snapshot()
}
