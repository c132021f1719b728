package input

// Queue buffers actions raised by key handlers so they are applied in order
// at a single point in the frame, on the same thread as the gravity tick.
type Queue struct {
	actions []Action
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push queues an action.
func (q *Queue) Push(a Action) {
	q.actions = append(q.actions, a)
}

// Len returns the number of pending actions.
func (q *Queue) Len() int {
	return len(q.actions)
}

// Flush dispatches every pending action in push order, resetting the buffer.
// It returns how many of them changed state.
func (q *Queue) Flush(d *Dispatcher) int {
	changed := 0
	for _, a := range q.actions {
		if d.Dispatch(a) {
			changed++
		}
	}
	q.actions = q.actions[:0]
	return changed
}

// Reset drops pending actions without dispatching them.
func (q *Queue) Reset() {
	q.actions = q.actions[:0]
}
