package main

import "container/heap"

// A minHeap is a min-heap backed by a slice, ordered by less.
type minHeap[E any] struct {
	s sliceHeap[E]
}

func newMinHeap[E any](less func(E, E) bool) *minHeap[E] {
	return &minHeap[E]{sliceHeap[E]{less: less}}
}

// push is O(log n).
func (h *minHeap[E]) push(elem E) {
	heap.Push(&h.s, elem)
}

// pop removes and returns the minimum element. It panics if h is empty.
func (h *minHeap[E]) pop() E {
	return heap.Pop(&h.s).(E)
}

func (h *minHeap[E]) len() int {
	return len(h.s.s)
}

// sliceHeap adapts a slice and comparison function to heap.Interface.
type sliceHeap[E any] struct {
	s    []E
	less func(E, E) bool
}

func (s *sliceHeap[E]) Len() int           { return len(s.s) }
func (s *sliceHeap[E]) Swap(i, j int)      { s.s[i], s.s[j] = s.s[j], s.s[i] }
func (s *sliceHeap[E]) Less(i, j int) bool { return s.less(s.s[i], s.s[j]) }

func (s *sliceHeap[E]) Push(x interface{}) {
	s.s = append(s.s, x.(E))
}

func (s *sliceHeap[E]) Pop() interface{} {
	e := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return e
}
