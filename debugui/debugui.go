// Package debugui draws Dear ImGui inspector windows on top of a running
// session. Windows are registered as Items and rendered by System after the
// game systems of the frame have executed.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackfall/loop"
)

// Item holds one Dear ImGui render function.
type Item struct {
	Name   string
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Frontends skip game key handling while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System defers every enabled item's render function and refreshes
// InputState.
type System struct {
	Enabled bool
	Input   InputState

	// Capture reads the input capture flags. It defaults to the current
	// ImGui IO.
	Capture func() InputState

	items []Item
}

func NewSystem() *System {
	return &System{
		Enabled: true,
		Capture: currentCapture,
	}
}

func currentCapture() InputState {
	io := imgui.CurrentIO()
	return InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}

// Add registers a window. Windows render in registration order.
func (s *System) Add(items ...Item) {
	s.items = append(s.items, items...)
}

func (s *System) Items() []Item {
	return s.items
}

// Execute implements loop.System.
func (s *System) Execute(frame *loop.Frame) {
	if !s.Enabled {
		s.Input = InputState{}
		return
	}
	if s.Capture != nil {
		s.Input = s.Capture()
	}

	for _, item := range s.items {
		frame.Defer(item.Render)
	}
}
