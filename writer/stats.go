package writer

import "sync/atomic"

// Stats tracks writer statistics
type Stats struct {
	processed atomic.Uint64
	failed    atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// record counts the outcome of one write
func (s *Stats) record(err error) {
	if err != nil {
		s.IncrementFailed()
		return
	}
	s.IncrementProcessed()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.processed.Store(0)
	s.failed.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: s.processed.Load(),
		FailedTotal:    s.failed.Load(),
	}
}

// StatsProvider is implemented by writers that track statistics
type StatsProvider interface {
	Stats() Snapshot
}
