package eviction

import (
	"container/list"
	"sync"
)

// FIFOAlgorithm evicts keys in the order they were admitted. Touch has no effect.
type FIFOAlgorithm struct {
	mutex sync.Mutex
	queue *list.List
	index map[string]*list.Element
}

// NewFIFOAlgorithm creates a new FIFOAlgorithm.
func NewFIFOAlgorithm() *FIFOAlgorithm {
	return &FIFOAlgorithm{
		queue: list.New(),
		index: make(map[string]*list.Element),
	}
}

// Admit appends key to the queue.
func (f *FIFOAlgorithm) Admit(key string) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if _, ok := f.index[key]; ok {
		return
	}

	f.index[key] = f.queue.PushBack(key)
}

// Touch is a no-op.
func (*FIFOAlgorithm) Touch(string) {}

// Delete removes key from the queue.
func (f *FIFOAlgorithm) Delete(key string) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if el, ok := f.index[key]; ok {
		f.queue.Remove(el)
		delete(f.index, key)
	}
}

// Evict pops the oldest key.
func (f *FIFOAlgorithm) Evict() (string, bool) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	front := f.queue.Front()
	if front == nil {
		return "", false
	}

	key, _ := f.queue.Remove(front).(string)
	delete(f.index, key)

	return key, true
}

// Len returns the number of queued keys.
func (f *FIFOAlgorithm) Len() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	return f.queue.Len()
}
