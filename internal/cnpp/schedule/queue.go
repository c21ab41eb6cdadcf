//
// Copyright 2020, 2021 Kenneth J. Gibson
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package schedule implements the group scheduler: a priority queue that
// orders groups by how productive running strategies on them has recently
// been, so the solver driver spends its effort where propagation is most
// likely to pay off.
package schedule

import "container/heap"

// Queue is a min-priority queue over comparable keys, backed by
// container/heap, with an index so Upsert (decrease-key, or insert if
// absent) runs in O(log n) and membership tests run in O(1). More negative
// priority means "processed sooner".
type Queue[K comparable] struct {
	h     queueHeap[K]
	index map[K]*queueItem[K]
}

type queueItem[K comparable] struct {
	key      K
	priority int
	heapIdx  int
}

// NewQueue returns an empty Queue.
func NewQueue[K comparable]() *Queue[K] {
	return &Queue[K]{index: make(map[K]*queueItem[K])}
}

// Len reports the number of keys currently queued.
func (q *Queue[K]) Len() int { return len(q.h) }

// Contains reports whether key is currently queued.
func (q *Queue[K]) Contains(key K) bool {
	_, ok := q.index[key]
	return ok
}

// Insert adds key with the given initial priority. If key is already
// queued, Insert is a no-op; use Upsert to adjust an existing key's
// priority.
func (q *Queue[K]) Insert(key K, priority int) {
	if _, ok := q.index[key]; ok {
		return
	}
	item := &queueItem[K]{key: key, priority: priority}
	q.index[key] = item
	heap.Push(&q.h, item)
}

// Upsert adjusts key's priority by delta, inserting it at priority delta if
// it was not already queued. This implements the scheduler's "insert at
// priority 0 then decrement if not currently queued, else decrement the
// existing priority" rule.
func (q *Queue[K]) Upsert(key K, delta int) {
	item, ok := q.index[key]
	if !ok {
		q.Insert(key, delta)
		return
	}
	item.priority += delta
	heap.Fix(&q.h, item.heapIdx)
}

// PopMin removes and returns the key with the lowest priority. Ties are
// broken by heap order, which is arbitrary but deterministic for a given
// sequence of insertions and priority updates.
func (q *Queue[K]) PopMin() (K, bool) {
	if len(q.h) == 0 {
		var zero K
		return zero, false
	}
	item := heap.Pop(&q.h).(*queueItem[K])
	delete(q.index, item.key)
	return item.key, true
}

// queueHeap implements container/heap.Interface over *queueItem[K].
type queueHeap[K comparable] []*queueItem[K]

func (h queueHeap[K]) Len() int { return len(h) }
func (h queueHeap[K]) Less(i, j int) bool {
	return h[i].priority < h[j].priority
}
func (h queueHeap[K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIdx = i
	h[j].heapIdx = j
}
func (h *queueHeap[K]) Push(x any) {
	item := x.(*queueItem[K])
	item.heapIdx = len(*h)
	*h = append(*h, item)
}
func (h *queueHeap[K]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
