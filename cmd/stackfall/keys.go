package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/stackfall/config"
	"github.com/plus3/stackfall/input"
)

type binding struct {
	key    ebiten.Key
	action input.Action
}

// Window keys handled outside the action table.
const (
	keyQuit         = ebiten.KeyEscape
	keyDebugOverlay = ebiten.KeyF1
	keyGhost        = ebiten.KeyG
	keyGrid         = ebiten.KeyH
)

var reservedKeys = map[ebiten.Key]string{
	keyQuit:         "quit",
	keyDebugOverlay: "the debug overlay",
	keyGhost:        "the ghost toggle",
	keyGrid:         "the grid toggle",
}

// parseBindings resolves the configured key names in action order. Keys
// reserved for window toggles are rejected.
func parseBindings(cfg *config.Config) ([]binding, error) {
	var out []binding
	for _, action := range input.Actions {
		for _, name := range cfg.KeysFor(action) {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("key %q for %s: %w", name, action, err)
			}
			if use, ok := reservedKeys[key]; ok {
				return nil, fmt.Errorf("key %q for %s is reserved for %s", name, action, use)
			}
			out = append(out, binding{key: key, action: action})
		}
	}
	return out, nil
}

// pressed returns the actions whose keys went down this tick.
func pressed(bindings []binding) []input.Action {
	var out []input.Action
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			out = append(out, b.action)
		}
	}
	return out
}
