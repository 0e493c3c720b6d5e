package application

import (
	"sync"

	"tokdex/internal/domain"
)

// Session carries the mutable per-process state that operations share: the
// current bare-file index and the one-scan-at-a-time gate. It replaces a
// global manager object; tests construct independent sessions.
type Session struct {
	mu        sync.Mutex
	bareIndex *domain.BareIndex
	bareDir   string
	scanning  bool
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// BeginScan claims the scan slot. Only one scan may be in flight at a time;
// a second request fails with ErrScanInFlight and must be retried after the
// first completes. Scans are not cancellable: a caller that loses interest
// simply discards the result.
func (s *Session) BeginScan() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scanning {
		return ErrScanInFlight
	}
	s.scanning = true
	return nil
}

// EndScan releases the scan slot.
func (s *Session) EndScan() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scanning = false
}

// SetBareIndex installs a freshly built index for the given folder,
// invalidating whatever was there before.
func (s *Session) SetBareIndex(folder string, idx *domain.BareIndex) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bareIndex != nil {
		s.bareIndex.Invalidate()
	}
	s.bareIndex = idx
	s.bareDir = folder
}

// BareIndex returns the current index and the folder it was built from.
// Nil until a listing has run.
func (s *Session) BareIndex() (*domain.BareIndex, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bareIndex, s.bareDir
}
