// Package input maps logical player actions onto engine operations.
package input

import "fmt"

// Action is a logical input, independent of any key or device.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	SoftDrop
	Rotate
	HardDrop
	Restart
)

// Actions lists every action in declaration order.
var Actions = []Action{MoveLeft, MoveRight, SoftDrop, Rotate, HardDrop, Restart}

var actionNames = map[Action]string{
	MoveLeft:  "MoveLeft",
	MoveRight: "MoveRight",
	SoftDrop:  "SoftDrop",
	Rotate:    "Rotate",
	HardDrop:  "HardDrop",
	Restart:   "Restart",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ParseAction accepts the names produced by String.
func ParseAction(s string) (Action, error) {
	for a, name := range actionNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
