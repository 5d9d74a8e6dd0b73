package rrchan

import (
	"runtime"

	"github.com/gammazero/deque"
)

// New returns Sender and its first Receiver.
//
// More receivers can be obtained at any time with Sender.AddReceiver.
func New[T any](opt ...Option) (*Sender[T], *Receiver[T]) {
	s := &Sender[T]{
		options: newOptions(opt),
	}

	runtime.SetFinalizer(s, (*Sender[T]).Close)

	return s, s.AddReceiver()
}

// Sender delivers every sent value to exactly one of its receivers, rotating
// through them in round-robin order. Receivers that are gone are removed from
// rotation when Send discovers them.
//
// Sender is not safe for concurrent use; calls to Send and AddReceiver must
// be serialized by the caller (or see Dispatcher).
type Sender[T any] struct {
	links   deque.Deque[*link[T]]
	cursor  int
	closed  bool
	options options
}

// Send hands v to the next live receiver in rotation. It never blocks.
//
// When every receiver is gone, Send returns *UndeliverableError[T] holding v.
// Sender keeps failing this way until AddReceiver is called.
func (s *Sender[T]) Send(v T) error {
	s.cursor++

	for s.links.Len() > 0 {
		if s.cursor >= s.links.Len() {
			s.cursor = 0
		}

		if s.links.At(s.cursor).send(v) {
			return nil
		}

		// Cursor stays in place, link that slides into this
		// position is tried next.
		s.links.Remove(s.cursor)

		if fn := s.options.Sender.OnPruneFunc; fn != nil {
			fn()
		}
	}

	return &UndeliverableError[T]{Value: v}
}

// AddReceiver returns new Receiver which joins rotation as last one.
// If Sender is closed returned Receiver is closed as well.
func (s *Sender[T]) AddReceiver() *Receiver[T] {
	l := newLink[T](s.options.Link)

	if s.closed {
		l.closeSender()
	} else {
		s.links.PushBack(l)
	}

	return newReceiver(l)
}

// Len returns number of receivers in rotation. Receivers that are
// gone are counted until Send removes them.
func (s *Sender[T]) Len() int {
	return s.links.Len()
}

// Close closes Sender. Receivers will get ErrClosed once they have received
// all values already sent. Calling Close more than once has no effect.
//
// Sender is closed automatically when it is garbage collected.
func (s *Sender[T]) Close() {
	if s.closed {
		return
	}

	s.closed = true

	for s.links.Len() > 0 {
		s.links.PopFront().closeSender()
	}

	runtime.SetFinalizer(s, nil)
}
