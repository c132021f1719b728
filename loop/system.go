package loop

// System is one stage of a frame. Systems keep whatever state they need
// between frames in their own fields.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) {
	f(frame)
}
