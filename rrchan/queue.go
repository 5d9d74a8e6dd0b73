package rrchan

import (
	queue2 "github.com/gammazero/deque"
)

const minQueueCapacity = 16

type queue[T any] interface {
	PushBack(val T)
	PopFront() (val T)
	Size() int
	IsEmpty() bool
	Clear()
}

func newQueue[T any](capacity, minimum int) queue[T] {
	if minimum < minQueueCapacity {
		minimum = minQueueCapacity
	}

	w := &queueWrap[T]{}
	w.q.SetBaseCap(minimum)

	if capacity > 0 {
		w.q.Grow(capacity)
	}

	return w
}

type queueWrap[T any] struct {
	q queue2.Deque[T]
}

func (w *queueWrap[T]) PushBack(val T) {
	w.q.PushBack(val)
}

func (w *queueWrap[T]) PopFront() T {
	return w.q.PopFront()
}

func (w *queueWrap[T]) Size() int {
	return w.q.Len()
}

func (w *queueWrap[T]) IsEmpty() bool {
	return w.q.Len() == 0
}

func (w *queueWrap[T]) Clear() {
	w.q.Clear()
}
