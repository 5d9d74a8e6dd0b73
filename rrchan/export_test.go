package rrchan

const (
	MinQueueCapacity = minQueueCapacity
)

func NewOptions(opts ...Option) options {
	return newOptions(opts)
}

func NewDispatcherOptions(opts ...DispatcherOption) options {
	return newOptions(opts)
}

func NewZeroOptions() options {
	return options{}
}

func NewQueue[T any](capacity, minimum int) *queueWrap[T] {
	return newQueue[T](capacity, minimum).(*queueWrap[T]) //nolint:forcetypeassert // relax
}

func (w *queueWrap[T]) Cap() int {
	return w.q.Cap()
}

func (s *Sender[T]) Cursor() int {
	return s.cursor
}
