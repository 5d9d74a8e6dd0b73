package rrchan

import (
	gocontext "context"
	"sync"
)

// Context is provided to Dispatcher's OnStart function so it can
// respond on stop signal.
type Context = gocontext.Context

// Dispatcher forwards values received from native channel to Sender in
// its own goroutine.
//
// Dispatcher owns the Sender: it is closed once Dispatcher ends. Receivers
// may be added while Dispatcher is running via Dispatcher.AddReceiver.
type Dispatcher[T any] struct {
	srcC    <-chan T
	options options

	// senderLock serializes access to sender
	senderLock sync.Mutex
	sender     *Sender[T]

	lock    sync.Mutex
	started bool
	cancel  gocontext.CancelCauseFunc
	err     error

	endOnce sync.Once
	endedC  chan struct{}
}

// NewDispatcher returns new Dispatcher which will forward values from srcC to s.
// Dispatcher has to be started with Start.
func NewDispatcher[T any](srcC <-chan T, s *Sender[T], opt ...DispatcherOption) *Dispatcher[T] {
	return &Dispatcher[T]{
		srcC:    srcC,
		sender:  s,
		options: newOptions(opt),
		endedC:  make(chan struct{}),
	}
}

// Start spawns goroutine which forwards values. Dispatcher runs until
// srcC is closed, Stop is called, or no receiver is left to receive value.
// Calling Start more than once has no effect.
func (d *Dispatcher[T]) Start() {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.started {
		return
	}

	ctx, cancel := gocontext.WithCancelCause(gocontext.Background())
	d.cancel = cancel
	d.started = true

	go d.dispatch(ctx)
}

// Stop signals Dispatcher to end and blocks until it has ended.
// Stopping Dispatcher which was never started only closes its Sender.
func (d *Dispatcher[T]) Stop() {
	d.lock.Lock()

	if !d.started {
		d.started = true
		d.lock.Unlock()
		d.end(ErrStopped)

		return
	}

	d.cancel(ErrStopped)
	d.lock.Unlock()

	<-d.endedC
}

// AddReceiver returns new Receiver of Dispatcher's Sender.
// It is safe to call while Dispatcher is running.
func (d *Dispatcher[T]) AddReceiver() *Receiver[T] {
	d.senderLock.Lock()
	defer d.senderLock.Unlock()

	return d.sender.AddReceiver()
}

// Done returns channel which is closed when Dispatcher has ended.
func (d *Dispatcher[T]) Done() <-chan struct{} {
	return d.endedC
}

// Err returns reason why Dispatcher has ended. It is nil while Dispatcher
// is running or if srcC was closed, ErrStopped if Dispatcher was stopped,
// and *UndeliverableError[T] if no receiver was left.
func (d *Dispatcher[T]) Err() error {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.err
}

// dispatch forwards values until Dispatcher has been signaled to end.
func (d *Dispatcher[T]) dispatch(ctx Context) {
	if fn := d.options.Dispatcher.OnStartFunc; fn != nil {
		fn(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			d.end(gocontext.Cause(ctx))
			return

		case v, ok := <-d.srcC:
			if !ok {
				d.end(nil)
				return
			}

			if err := d.send(v); err != nil {
				d.end(err)
				return
			}
		}
	}
}

func (d *Dispatcher[T]) send(v T) error {
	d.senderLock.Lock()
	defer d.senderLock.Unlock()

	return d.sender.Send(v)
}

func (d *Dispatcher[T]) end(err error) {
	d.endOnce.Do(func() {
		d.senderLock.Lock()
		d.sender.Close()
		d.senderLock.Unlock()

		d.lock.Lock()
		d.err = err
		if d.cancel != nil {
			d.cancel(err)
		}
		d.lock.Unlock()

		if fn := d.options.Dispatcher.OnStopFunc; fn != nil {
			fn()
		}

		close(d.endedC)
	})
}
