package rrchan

// OptCapacity sets initial queue capacity of every receiver created
// by the Sender. Queues are unbounded, capacity only avoids early
// reallocations.
func OptCapacity(capacity int) Option {
	return func(o *options) {
		o.Link.Capacity = capacity
	}
}

// OptMinCapacity sets capacity below which receiver's queue will never shrink.
// Values lower than default minimum are ignored.
func OptMinCapacity(minimum int) Option {
	return func(o *options) {
		o.Link.MinCapacity = minimum
	}
}

// OptOnPrune adds function which will be called every time Sender
// removes receiver that is gone from rotation.
// This function is executed in goroutine calling Send.
func OptOnPrune(f func()) Option {
	return func(o *options) {
		o.Sender.OnPruneFunc = f
	}
}

// OptOnStart adds function to Dispatcher which will be executed
// before first value is forwarded.
// This functions is executed in dispatcher's goroutine.
func OptOnStart(f func(Context)) DispatcherOption {
	return func(o *options) {
		o.Dispatcher.OnStartFunc = f
	}
}

// OptOnStop adds function to Dispatcher which will be executed
// after dispatcher has ended and its Sender is closed.
func OptOnStop(f func()) DispatcherOption {
	return func(o *options) {
		o.Dispatcher.OnStopFunc = f
	}
}

type (
	option func(o *options)

	Option           option
	DispatcherOption option
)

type options struct {
	Link       optionsLink
	Sender     optionsSender
	Dispatcher optionsDispatcher
}

type optionsLink struct {
	Capacity    int
	MinCapacity int
}

type optionsSender struct {
	OnPruneFunc func()
}

type optionsDispatcher struct {
	OnStartFunc func(Context)
	OnStopFunc  func()
}

func newOptions[T ~func(o *options)](opts []T) options {
	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	return *o
}
