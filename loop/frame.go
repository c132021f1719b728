package loop

// Frame is handed to every system during one Scheduler.Once call.
type Frame struct {
	DeltaTime float64
	Index     int64

	deferred []func()
}

// Defer queues fn to run after every system of this frame has executed.
func (f *Frame) Defer(fn func()) {
	f.deferred = append(f.deferred, fn)
}

func (f *Frame) flush() {
	for _, fn := range f.deferred {
		fn()
	}
	f.deferred = f.deferred[:0]
}
