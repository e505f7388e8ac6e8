// Package eviction implements the policies a bounded report store uses to pick
// which memoized report to drop when it is full.
//
// The policies track keys only; the store keeps the reports.
package eviction

import (
	"maps"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/hyperstats/internal/sentinel"
)

const (
	// FIFO drops the report stored first.
	FIFO = "fifo"
	// LRU drops the report read or written least recently.
	LRU = "lru"
	// LFU drops the report read or written least often, the least recent one on ties.
	LFU = "lfu"
)

// IAlgorithm is the interface that must be implemented by eviction algorithms.
type IAlgorithm interface {
	// Admit records a newly stored key.
	Admit(key string)
	// Touch records a read or an overwrite of key.
	Touch(key string)
	// Delete forgets key.
	Delete(key string)
	// Evict returns the next key to drop and forgets it.
	Evict() (string, bool)
	// Len returns the number of tracked keys.
	Len() int
}

// AlgorithmRegistry manages eviction algorithm constructors.
type AlgorithmRegistry struct {
	algorithms map[string]func() IAlgorithm
}

// getDefaultAlgorithms returns the default set of eviction algorithms.
func getDefaultAlgorithms() map[string]func() IAlgorithm {
	return map[string]func() IAlgorithm{
		FIFO: func() IAlgorithm { return NewFIFOAlgorithm() },
		LRU:  func() IAlgorithm { return NewLRUAlgorithm() },
		LFU:  func() IAlgorithm { return NewLFUAlgorithm() },
	}
}

// NewAlgorithmRegistry creates a new algorithm registry.
func NewAlgorithmRegistry() *AlgorithmRegistry {
	registry := NewEmptyAlgorithmRegistry()
	registry.RegisterMultiple(getDefaultAlgorithms())

	return registry
}

// NewEmptyAlgorithmRegistry creates a new algorithm registry without default algorithms.
func NewEmptyAlgorithmRegistry() *AlgorithmRegistry {
	return &AlgorithmRegistry{
		algorithms: make(map[string]func() IAlgorithm),
	}
}

// Register registers a new eviction algorithm with the given name.
func (r *AlgorithmRegistry) Register(name string, createFunc func() IAlgorithm) {
	r.algorithms[name] = createFunc
}

// RegisterMultiple registers a set of eviction algorithms.
func (r *AlgorithmRegistry) RegisterMultiple(algorithms map[string]func() IAlgorithm) {
	maps.Copy(r.algorithms, algorithms)
}

// NewAlgorithm creates the eviction algorithm registered as algorithmName.
func (r *AlgorithmRegistry) NewAlgorithm(algorithmName string) (IAlgorithm, error) {
	if algorithmName == "" {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "algorithmName")
	}

	createFunc, ok := r.algorithms[algorithmName]
	if !ok {
		return nil, ewrap.Wrap(sentinel.ErrAlgorithmNotFound, algorithmName)
	}

	return createFunc(), nil
}

// NewEvictionAlgorithm creates an eviction algorithm from the default registry.
func NewEvictionAlgorithm(algorithmName string) (IAlgorithm, error) {
	return NewAlgorithmRegistry().NewAlgorithm(algorithmName)
}
