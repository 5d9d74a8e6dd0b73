package rrchan

import (
	gocontext "context"
	"iter"
	"runtime"
	"time"
)

// Receiver is receiving end of channel. It gets values which Sender
// delivered to it, in order they were sent.
//
// Receive methods are safe for concurrent use, but each value is
// received only once.
//
// Receiver must stay reachable while in use; finalizer closes it.
type Receiver[T any] struct {
	link *link[T]
}

func newReceiver[T any](l *link[T]) *Receiver[T] {
	r := &Receiver[T]{link: l}

	runtime.SetFinalizer(r, (*Receiver[T]).Close)

	return r
}

// Recv blocks until value is received. It returns ErrClosed when Sender is
// closed and all values sent to this Receiver have been received, or when
// Receiver itself is closed.
func (r *Receiver[T]) Recv() (T, error) {
	defer runtime.KeepAlive(r)

	return r.link.recv(gocontext.Background(), nil)
}

// RecvTimeout is like Recv but it returns ErrTimeout if no value was
// received within timeout. Timing out never consumes a value.
func (r *Receiver[T]) RecvTimeout(timeout time.Duration) (T, error) {
	defer runtime.KeepAlive(r)

	t := time.NewTimer(timeout)
	defer t.Stop()

	return r.link.recv(gocontext.Background(), t.C)
}

// RecvContext is like Recv but it returns early with ctx error when ctx is done.
func (r *Receiver[T]) RecvContext(ctx gocontext.Context) (T, error) {
	defer runtime.KeepAlive(r)

	return r.link.recv(ctx, nil)
}

// TryRecv returns value if one is available without blocking. Otherwise
// it returns ErrEmpty, or ErrClosed if no value will ever be available.
func (r *Receiver[T]) TryRecv() (T, error) {
	return r.link.tryRecv()
}

// Len returns number of values waiting to be received.
func (r *Receiver[T]) Len() int {
	return r.link.len()
}

// Close abandons Receiver and drops all values waiting in it. Sender will
// remove this Receiver from rotation on its next attempt to send to it.
//
// Receiver is closed automatically when it is garbage collected.
func (r *Receiver[T]) Close() {
	r.link.closeReceiver()
	runtime.SetFinalizer(r, nil)
}

// Iter returns Iter which receives values from r until it is closed.
// Receiver should not be used directly after calling Iter.
func (r *Receiver[T]) Iter() *Iter[T] {
	return &Iter[T]{rx: r}
}

// All returns sequence of values received from r. Sequence ends when
// Receiver is closed and can not be restarted.
func (r *Receiver[T]) All() iter.Seq[T] {
	it := r.Iter()

	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Iter is single pass iterator over values of Receiver.
type Iter[T any] struct {
	rx   *Receiver[T]
	done bool
}

// Next blocks until next value is received. It returns false once Receiver
// is closed, and keeps returning false after that.
func (it *Iter[T]) Next() (T, bool) {
	var zero T

	if it.done {
		return zero, false
	}

	v, err := it.rx.Recv()
	if err != nil {
		it.done = true
		it.rx = nil

		return zero, false
	}

	return v, true
}
