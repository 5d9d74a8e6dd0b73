package rrchan

import (
	gocontext "context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// link is unbounded FIFO transport between one Sender and one Receiver.
// Sending to link never blocks, values are queued until they are received.
type link[T any] struct {
	lock         sync.Mutex
	queue        queue[T]
	senderGone   bool
	receiverGone bool

	// readyC is signaled (without blocking) whenever queue may have a value.
	readyC chan struct{}
	// doneC is closed when either end of the link is gone.
	doneC chan struct{}
}

func newLink[T any](options optionsLink) *link[T] {
	return &link[T]{
		queue:  newQueue[T](options.Capacity, options.MinCapacity),
		readyC: make(chan struct{}, 1),
		doneC:  make(chan struct{}),
	}
}

// send queues value and returns true, or returns false if receiving end
// of this link is gone. Value remains owned by caller when rejected.
func (l *link[T]) send(v T) bool {
	l.lock.Lock()

	if l.receiverGone || l.senderGone {
		l.lock.Unlock()
		return false
	}

	l.queue.PushBack(v)
	l.lock.Unlock()

	l.signalReady()

	return true
}

func (l *link[T]) signalReady() {
	select {
	case l.readyC <- struct{}{}:
	default:
	}
}

// tryRecv never blocks. Values queued before sender has gone are
// still returned before reporting ErrClosed.
func (l *link[T]) tryRecv() (T, error) {
	l.lock.Lock()

	if !l.queue.IsEmpty() {
		v := l.queue.PopFront()
		more := !l.queue.IsEmpty()
		l.lock.Unlock()

		// pass the signal on, some other receive call may be waiting
		if more {
			l.signalReady()
		}

		return v, nil
	}

	closed := l.senderGone || l.receiverGone
	l.lock.Unlock()

	var zero T
	if closed {
		return zero, ErrClosed
	}

	return zero, ErrEmpty
}

// recv blocks until value is received, link is closed, timeoutC fires
// or ctx is done. Value is dequeued only when it is returned.
func (l *link[T]) recv(ctx gocontext.Context, timeoutC <-chan time.Time) (T, error) {
	for {
		v, err := l.tryRecv()
		if !errors.Is(err, ErrEmpty) {
			return v, err
		}

		select {
		case <-l.readyC:
		case <-l.doneC:
		case <-timeoutC:
			return v, ErrTimeout
		case <-ctx.Done():
			return v, fmt.Errorf("Receiver.Recv canceled: %w", ctx.Err())
		}
	}
}

func (l *link[T]) len() int {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.queue.Size()
}

// closeSender marks sending end as gone. Queued values stay receivable.
func (l *link[T]) closeSender() {
	l.lock.Lock()
	defer l.lock.Unlock()

	if l.senderGone {
		return
	}

	l.senderGone = true
	l.closeDoneLocked()
}

// closeReceiver marks receiving end as gone and discards queued values,
// after which every send to this link is rejected.
func (l *link[T]) closeReceiver() {
	l.lock.Lock()
	defer l.lock.Unlock()

	if l.receiverGone {
		return
	}

	l.receiverGone = true
	l.queue.Clear()
	l.closeDoneLocked()
}

func (l *link[T]) closeDoneLocked() {
	select {
	case <-l.doneC:
	default:
		close(l.doneC)
	}
}
