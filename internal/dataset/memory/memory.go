// Package memory is the in-process dataset backend.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"hoadash/internal/core"
	"hoadash/internal/dataset"
)

type Store struct {
	mu      sync.RWMutex
	records map[int]core.FinancialYearRecord
}

func New(records ...core.FinancialYearRecord) *Store {
	s := &Store{records: make(map[int]core.FinancialYearRecord, len(records))}
	for _, r := range records {
		s.records[r.Year] = r.Clone()
	}
	return s
}

// NewStatic returns a store holding the built-in 2023 record.
func NewStatic() *Store {
	return New(dataset.Paraiso2023())
}

// Years implements dataset.Reader.
func (s *Store) Years(_ context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	years := make([]int, 0, len(s.records))
	for y := range s.records {
		years = append(years, y)
	}
	sort.Ints(years)
	return years, nil
}

// ReadYear implements dataset.Reader.
func (s *Store) ReadYear(_ context.Context, year int) (core.FinancialYearRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[year]
	if !ok {
		return core.FinancialYearRecord{}, fmt.Errorf("read year %d: %w", year, dataset.ErrYearNotFound)
	}
	return r.Clone(), nil
}

// SaveYear implements dataset.Writer.
func (s *Store) SaveYear(_ context.Context, r core.FinancialYearRecord) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[r.Year] = r.Clone()
	return nil
}
