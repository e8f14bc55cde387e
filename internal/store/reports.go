// Package store keeps finished analysis reports in memory so a client can
// re-read a completed analysis. Bounded: oldest reports are evicted first.
package store

import (
	"sync"

	"github.com/rupam1998/clarity-ai-app/internal/models"
)

type ReportStore struct {
	mu    sync.RWMutex
	byID  map[string]*models.AnalysisResult
	order []string
	cap   int
}

func NewReportStore(capacity int) *ReportStore {
	if capacity <= 0 {
		capacity = 100
	}
	return &ReportStore{
		byID: make(map[string]*models.AnalysisResult),
		cap:  capacity,
	}
}

func (s *ReportStore) Put(id string, result *models.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		s.order = append(s.order, id)
	}
	s.byID[id] = result
	for len(s.order) > s.cap {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.byID, oldest)
	}
}

func (s *ReportStore) Get(id string) (*models.AnalysisResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	return r, ok
}

func (s *ReportStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
