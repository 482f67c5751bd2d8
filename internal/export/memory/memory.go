// Package memory provides an in-memory dataset sink for tests and dry
// runs.
package memory

import (
	"context"
	"fmt"
	"sync"

	"salesgen/internal/core"
	"salesgen/internal/export"
)

type Store struct {
	mu       sync.Mutex
	datasets []core.Dataset
}

var _ export.DatasetWriter = (*Store)(nil)

func New() *Store {
	return &Store{}
}

// WriteDataset keeps a copy of the dataset and returns a synthetic ref.
func (s *Store) WriteDataset(_ context.Context, ds core.Dataset) (string, error) {
	if err := ds.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := ds
	kept.Records = append([]core.Record(nil), ds.Records...)
	s.datasets = append(s.datasets, kept)
	return fmt.Sprintf("mem:%d", len(s.datasets)), nil
}

// Datasets returns the stored datasets in write order.
func (s *Store) Datasets() []core.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Dataset(nil), s.datasets...)
}

// Last returns the most recently written dataset, if any.
func (s *Store) Last() (core.Dataset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.datasets) == 0 {
		return core.Dataset{}, false
	}
	return s.datasets[len(s.datasets)-1], true
}
