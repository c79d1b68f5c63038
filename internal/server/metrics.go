package server

import "sync/atomic"

// Metrics holds listener counters.
type Metrics struct {
	Connections  atomic.Int64
	Parsed       atomic.Int64
	ParseErrors  atomic.Int64
	ReadErrors   atomic.Int64
	WriteErrors  atomic.Int64
	AcceptErrors atomic.Int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Connections  int64
	Parsed       int64
	ParseErrors  int64
	ReadErrors   int64
	WriteErrors  int64
	AcceptErrors int64
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Connections:  m.Connections.Load(),
		Parsed:       m.Parsed.Load(),
		ParseErrors:  m.ParseErrors.Load(),
		ReadErrors:   m.ReadErrors.Load(),
		WriteErrors:  m.WriteErrors.Load(),
		AcceptErrors: m.AcceptErrors.Load(),
	}
}
