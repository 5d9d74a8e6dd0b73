package rrchan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/vladopajic/go-rrchan/rrchan"
)

func assertReceived[T comparable](t *testing.T, r *Receiver[T], val T) {
	t.Helper()

	v, err := r.TryRecv()
	assert.NoError(t, err)
	assert.Equal(t, val, v)
}

func assertEmpty[T any](t *testing.T, r *Receiver[T]) {
	t.Helper()

	_, err := r.TryRecv()
	assert.ErrorIs(t, err, ErrEmpty)
}

func assertClosed[T any](t *testing.T, r *Receiver[T]) {
	t.Helper()

	_, err := r.TryRecv()
	assert.ErrorIs(t, err, ErrClosed)

	_, err = r.Recv()
	assert.ErrorIs(t, err, ErrClosed)
}

func assertUndeliverable[T comparable](t *testing.T, s *Sender[T], val T) {
	t.Helper()

	err := s.Send(val)
	assert.ErrorIs(t, err, ErrUndeliverable)

	var uerr *UndeliverableError[T]
	if assert.ErrorAs(t, err, &uerr) {
		assert.Equal(t, val, uerr.Value)
	}
}

func sendAll[T any](t *testing.T, s *Sender[T], vals ...T) {
	t.Helper()

	for _, v := range vals {
		assert.NoError(t, s.Send(v))
	}
}
