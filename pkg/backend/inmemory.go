package backend

import (
	"context"
	"sync"

	"github.com/hyp3rd/hyperstats/internal/constants"
	"github.com/hyp3rd/hyperstats/internal/sentinel"
	"github.com/hyp3rd/hyperstats/pkg/eviction"
	"github.com/hyp3rd/hyperstats/pkg/stats"
)

// InMemory is a report store that keeps the reports in process memory.
// When a capacity is set, storing a new key first drops the victim of the eviction algorithm.
type InMemory struct {
	mu            sync.RWMutex
	reports       map[string]stats.Report
	capacity      int
	algorithmName string
	algorithm     eviction.IAlgorithm
}

// NewInMemory creates a new in-memory report store with the given options.
func NewInMemory(opts ...Option[InMemory]) (*InMemory, error) {
	inm := &InMemory{
		reports:       make(map[string]stats.Report),
		algorithmName: constants.DefaultEvictionAlgorithm,
	}

	ApplyOptions(inm, opts...)

	if inm.capacity < 0 {
		return nil, sentinel.ErrInvalidCapacity
	}

	algorithm, err := eviction.NewEvictionAlgorithm(inm.algorithmName)
	if err != nil {
		return nil, err
	}

	inm.algorithm = algorithm

	return inm, nil
}

// EvictionAlgorithm returns the name of the eviction algorithm.
func (inm *InMemory) EvictionAlgorithm() string {
	return inm.algorithmName
}

// Capacity returns the maximum number of stored reports, 0 when unbounded.
func (inm *InMemory) Capacity() int {
	return inm.capacity
}

// Get retrieves a copy of the report stored under key.
func (inm *InMemory) Get(_ context.Context, key string) (*stats.Report, bool, error) {
	inm.mu.RLock()
	defer inm.mu.RUnlock()

	rep, ok := inm.reports[key]
	if !ok {
		return nil, false, nil
	}

	inm.algorithm.Touch(key)

	return &rep, true, nil
}

// Set stores a copy of report under key.
func (inm *InMemory) Set(_ context.Context, key string, report *stats.Report) error {
	if report == nil {
		return nil
	}

	inm.mu.Lock()
	defer inm.mu.Unlock()

	if _, exists := inm.reports[key]; exists {
		inm.algorithm.Touch(key)
	} else {
		if inm.capacity > 0 && len(inm.reports) >= inm.capacity {
			victim, ok := inm.algorithm.Evict()
			if ok {
				delete(inm.reports, victim)
			}
		}

		inm.algorithm.Admit(key)
	}

	inm.reports[key] = *report

	return nil
}

// Count returns the number of stored reports.
func (inm *InMemory) Count(_ context.Context) int {
	inm.mu.RLock()
	defer inm.mu.RUnlock()

	return len(inm.reports)
}

// Clear removes all stored reports.
func (inm *InMemory) Clear(_ context.Context) error {
	inm.mu.Lock()
	defer inm.mu.Unlock()

	for key := range inm.reports {
		inm.algorithm.Delete(key)
	}

	inm.reports = make(map[string]stats.Report)

	return nil
}

// Kind returns the backend type.
func (*InMemory) Kind() string {
	return constants.InMemoryBackend
}
