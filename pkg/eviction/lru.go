package eviction

import (
	"container/list"
	"sync"
)

// LRUAlgorithm evicts the least recently used key.
// The front of the list is the most recent key, the back is the next victim.
type LRUAlgorithm struct {
	mutex sync.Mutex
	order *list.List
	index map[string]*list.Element
}

// NewLRUAlgorithm creates a new LRUAlgorithm.
func NewLRUAlgorithm() *LRUAlgorithm {
	return &LRUAlgorithm{
		order: list.New(),
		index: make(map[string]*list.Element),
	}
}

// Admit records key as the most recently used.
func (l *LRUAlgorithm) Admit(key string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if el, ok := l.index[key]; ok {
		l.order.MoveToFront(el)

		return
	}

	l.index[key] = l.order.PushFront(key)
}

// Touch moves key to the front.
func (l *LRUAlgorithm) Touch(key string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if el, ok := l.index[key]; ok {
		l.order.MoveToFront(el)
	}
}

// Delete forgets key.
func (l *LRUAlgorithm) Delete(key string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if el, ok := l.index[key]; ok {
		l.order.Remove(el)
		delete(l.index, key)
	}
}

// Evict pops the least recently used key.
func (l *LRUAlgorithm) Evict() (string, bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	back := l.order.Back()
	if back == nil {
		return "", false
	}

	key, _ := l.order.Remove(back).(string)
	delete(l.index, key)

	return key, true
}

// Len returns the number of tracked keys.
func (l *LRUAlgorithm) Len() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.order.Len()
}
