// Package session holds the single in-process analysis session. It replaces
// ambient global state with an explicit store the presenter reads from.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"rosterlens/domain/roster"
	"rosterlens/internal/aggregate"
	"rosterlens/internal/sniff"
)

// Analysis is everything one successful upload produced.
type Analysis struct {
	ID         string
	UploadedAt time.Time
	Report     *sniff.Report
	Records    []roster.EmployeeRecord
	Stats      aggregate.Result
}

// NewAnalysis stamps a fresh analysis with an upload ID for log correlation.
func NewAnalysis(report *sniff.Report, records []roster.EmployeeRecord, stats aggregate.Result) *Analysis {
	return &Analysis{
		ID:         uuid.NewString(),
		UploadedAt: time.Now(),
		Report:     report,
		Records:    records,
		Stats:      stats,
	}
}

// Store keeps the current session state. Every upload rebuilds it from
// scratch, last write wins; a failed upload leaves the store in a terminal
// error state with no partial results.
type Store struct {
	mu      sync.RWMutex
	current *Analysis
	lastErr error
}

func NewStore() *Store {
	return &Store{}
}

// Set installs a completed analysis, discarding any prior state.
func (s *Store) Set(a *Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = a
	s.lastErr = nil
}

// Fail records a terminal upload error, discarding any prior results.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.lastErr = err
}

// Current returns the latest analysis, or the terminal error of the last
// failed upload. Both nil means nothing has been uploaded yet.
func (s *Store) Current() (*Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.lastErr
}

// Reset discards all results and returns the store to the upload state.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.lastErr = nil
}
