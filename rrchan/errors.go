package rrchan

import "errors"

var (
	// ErrUndeliverable is the error wrapped by UndeliverableError, returned when
	// every receiver of the Sender is gone.
	ErrUndeliverable = errors.New("all receivers are gone")

	// ErrClosed is returned by receive operations once the Receiver will never
	// produce another value.
	ErrClosed = errors.New("channel closed")

	// ErrEmpty is returned by TryRecv when no value is queued.
	ErrEmpty = errors.New("channel empty")

	// ErrTimeout is returned by RecvTimeout when no value arrived in time.
	ErrTimeout = errors.New("receive timed out")

	// ErrStopped is returned by Dispatcher.Err after the Dispatcher was stopped.
	ErrStopped = errors.New("dispatcher stopped")
)

// UndeliverableError is returned by Sender.Send when the value could not be
// handed to any receiver. Value holds the value that was sent, so it is
// never lost.
type UndeliverableError[T any] struct {
	Value T
}

func (e *UndeliverableError[T]) Error() string {
	return ErrUndeliverable.Error()
}

func (e *UndeliverableError[T]) Unwrap() error {
	return ErrUndeliverable
}
