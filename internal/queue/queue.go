package queue

import (
	"container/heap"

	"github.com/hupe1980/indexical/bitset/simdset"
)

// Compile time check to ensure PriorityQueue satisfies the heap interface.
var _ heap.Interface = (*PriorityQueue)(nil)

// Item is a node index with its scheduling priority.
type Item struct {
	Node     int
	Priority int
}

// PriorityQueue implements heap.Interface and holds Items by value.
type PriorityQueue struct {
	items []Item
}

// NewMin initializes a new priority queue with minimum priority.
func NewMin(capacity int) *PriorityQueue {
	return &PriorityQueue{
		items: make([]Item, 0, capacity),
	}
}

// PushItem inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue) PushItem(item Item) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// PopItem removes and returns the top element while maintaining the heap invariant.
func (pq *PriorityQueue) PopItem() (Item, bool) {
	n := len(pq.items)
	if n == 0 {
		return Item{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

func (pq *PriorityQueue) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.Less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && pq.Less(r, l) {
			best = r
		}
		if !pq.Less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}

// Len returns the number of elements in the priority queue.
func (pq *PriorityQueue) Len() int { return len(pq.items) }

// Less reports whether the element with index i should sort before the element with index j.
// Equal priorities fall back to the node index so the order is deterministic.
func (pq *PriorityQueue) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.Node < b.Node
}

// Swap swaps the elements with indexes i and j.
func (pq *PriorityQueue) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

// Push adds x to the priority queue.
func (pq *PriorityQueue) Push(x any) {
	pq.items = append(pq.items, x.(Item))
}

// Pop removes and returns the last element of the backing slice.
func (pq *PriorityQueue) Pop() any {
	n := len(pq.items)
	if n == 0 {
		return Item{}
	}
	item := pq.items[n-1]
	pq.items = pq.items[:n-1]
	return item
}

// Reset clears the priority queue for reuse.
func (pq *PriorityQueue) Reset() {
	pq.items = pq.items[:0]
}

// Worklist is a min-priority queue of node indices in [0, n) that holds
// each node at most once.
type Worklist struct {
	pq       *PriorityQueue
	queued   *simdset.Bitset[uint64]
	priority []int
}

// NewWorklist creates an empty worklist. priority[i] orders node i; lower
// runs first.
func NewWorklist(priority []int) *Worklist {
	return &Worklist{
		pq:       NewMin(len(priority)),
		queued:   simdset.New(len(priority)),
		priority: priority,
	}
}

// Push queues node and reports whether it was not already queued.
func (w *Worklist) Push(node int) bool {
	if !w.queued.Insert(node) {
		return false
	}
	w.pq.PushItem(Item{Node: node, Priority: w.priority[node]})
	return true
}

// PushAll queues every node.
func (w *Worklist) PushAll() {
	w.pq.Reset()
	w.queued.InsertAll()
	for node, p := range w.priority {
		w.pq.items = append(w.pq.items, Item{Node: node, Priority: p})
	}
	heap.Init(w.pq)
}

// Pop removes the node with the lowest priority.
func (w *Worklist) Pop() (int, bool) {
	item, ok := w.pq.PopItem()
	if !ok {
		return 0, false
	}
	w.queued.Remove(item.Node)
	return item.Node, true
}

// Len returns the number of queued nodes.
func (w *Worklist) Len() int {
	return w.pq.Len()
}
