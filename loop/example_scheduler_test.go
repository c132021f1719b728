package loop_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/stackfall/loop"
)

type Countdown struct {
	Remaining float64
}

func (c *Countdown) Execute(frame *loop.Frame) {
	c.Remaining -= frame.DeltaTime
	if c.Remaining <= 0 {
		frame.Defer(func() {
			fmt.Println("countdown finished")
		})
	}
}

// ExampleScheduler runs two frames of a single system. Deferred work runs
// once every system in the frame has executed.
func ExampleScheduler() {
	countdown := &Countdown{Remaining: 1}

	scheduler := loop.NewScheduler()
	scheduler.Register(countdown)

	scheduler.Once(0.5)
	fmt.Printf("remaining %.1f\n", countdown.Remaining)
	scheduler.Once(0.5)

	// Output:
	// remaining 0.5
	// countdown finished
}

// ExampleScheduler_Run demonstrates running a continuous loop until the
// context is cancelled.
func ExampleScheduler_Run() {
	scheduler := loop.NewScheduler()
	scheduler.Register(&Countdown{Remaining: 60})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	scheduler.Run(ctx, 16*time.Millisecond)

	fmt.Println("Scheduler stopped")
	// Output:
	// Scheduler stopped
}
