package eviction

import (
	"container/heap"
	"sync"
)

// LFUAlgorithm is an eviction algorithm that uses the Least Frequently Used (LFU) policy to select keys for eviction.
type LFUAlgorithm struct {
	items map[string]*Node
	freqs *FrequencyHeap
	mutex sync.Mutex
	seq   uint64 // monotonic sequence to break frequency ties by recency (LRU on ties)
}

// Node is a tracked key of the LFUAlgorithm.
type Node struct {
	key   string
	count int
	index int
	last  uint64 // last access sequence (higher = more recent)
}

// FrequencyHeap is a min-heap of Nodes ordered by use count.
//
//nolint:recvcheck
type FrequencyHeap []*Node

// Len returns the length of the heap.
func (fh FrequencyHeap) Len() int { return len(fh) }

// Less returns true if the node at index i has a lower frequency than the node at index j.
func (fh FrequencyHeap) Less(i, j int) bool {
	if fh[i].count == fh[j].count {
		return fh[i].last < fh[j].last
	}

	return fh[i].count < fh[j].count
}

// Swap swaps the nodes at index i and j.
func (fh FrequencyHeap) Swap(i, j int) {
	fh[i], fh[j] = fh[j], fh[i]
	fh[i].index = i
	fh[j].index = j
}

// Push adds a node to the heap.
func (fh *FrequencyHeap) Push(x any) {
	node, ok := x.(*Node)
	if ok {
		node.index = len(*fh)
		*fh = append(*fh, node)
	}
}

// Pop removes the last node from the heap.
func (fh *FrequencyHeap) Pop() any {
	old := *fh
	n := len(old)
	node := old[n-1]

	old[n-1] = nil
	node.index = -1
	*fh = old[0 : n-1]

	return node
}

// NewLFUAlgorithm creates a new LFUAlgorithm.
func NewLFUAlgorithm() *LFUAlgorithm {
	return &LFUAlgorithm{
		items: make(map[string]*Node),
		freqs: &FrequencyHeap{},
	}
}

// Admit starts tracking key with a use count of one; an admitted key is touched instead.
func (l *LFUAlgorithm) Admit(key string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if node, ok := l.items[key]; ok {
		l.use(node)

		return
	}

	l.seq++

	node := &Node{key: key, count: 1, last: l.seq}

	l.items[key] = node
	heap.Push(l.freqs, node)
}

// Touch increments the use count of key.
func (l *LFUAlgorithm) Touch(key string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if node, ok := l.items[key]; ok {
		l.use(node)
	}
}

// Delete forgets key.
func (l *LFUAlgorithm) Delete(key string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	node, ok := l.items[key]
	if !ok {
		return
	}

	heap.Remove(l.freqs, node.index)
	delete(l.items, key)
}

// Evict pops the least frequently used key.
func (l *LFUAlgorithm) Evict() (string, bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.freqs.Len() == 0 {
		return "", false
	}

	node, ok := heap.Pop(l.freqs).(*Node)
	if !ok {
		return "", false
	}

	delete(l.items, node.key)

	return node.key, true
}

// Len returns the number of tracked keys.
func (l *LFUAlgorithm) Len() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.freqs.Len()
}

func (l *LFUAlgorithm) use(node *Node) {
	node.count++

	l.seq++

	node.last = l.seq
	heap.Fix(l.freqs, node.index)
}
