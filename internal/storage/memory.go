package storage

import (
	"context"
	"errors"
	"sync"

	"superrats/internal/ga"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string][]byte
	history     map[string][]GenerationRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = make(map[string][]byte)
	s.history = make(map[string][]GenerationRecord)
	return nil
}

// SaveRun stores the encoded payload so reads see the same versioning as SQLite.
func (s *MemoryStore) SaveRun(_ context.Context, run RunRecord) error {
	payload, err := EncodeRun(run)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return errNotInitialized
	}
	s.runs[run.RunID] = payload
	return nil
}

func (s *MemoryStore) GetRun(_ context.Context, runID string) (RunRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return RunRecord{}, false, errNotInitialized
	}

	payload, ok := s.runs[runID]
	if !ok {
		return RunRecord{}, false, nil
	}
	run, err := DecodeRun(payload)
	if err != nil {
		return RunRecord{}, false, err
	}
	return run, true, nil
}

func (s *MemoryStore) AppendGeneration(_ context.Context, runID string, rec GenerationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return errNotInitialized
	}

	// a rewound run overwrites everything from rec.Generation on
	records := s.history[runID]
	cut := len(records)
	for cut > 0 && records[cut-1].Generation >= rec.Generation {
		cut--
	}
	s.history[runID] = append(records[:cut], rec)
	return nil
}

func (s *MemoryStore) GetHistory(_ context.Context, runID string) (ga.History, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return ga.History{}, false, errNotInitialized
	}

	records, ok := s.history[runID]
	if !ok {
		return ga.History{}, false, nil
	}
	return historyOf(records), true, nil
}

func (s *MemoryStore) DeleteRun(_ context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return errNotInitialized
	}

	delete(s.runs, runID)
	delete(s.history, runID)
	return nil
}

var errNotInitialized = errors.New("store is not initialized")

func historyOf(records []GenerationRecord) ga.History {
	h := ga.History{
		Mean: make([]float64, 0, len(records)),
		Max:  make([]float64, 0, len(records)),
	}
	for _, r := range records {
		h.Mean = append(h.Mean, r.Mean)
		h.Max = append(h.Max, r.Max)
	}
	return h
}
