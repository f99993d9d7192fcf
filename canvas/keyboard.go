package canvas

import "github.com/porglezomp/pixel-canvas/input"

// KeyState tracks which keyboard keys are currently held. For use as the
// canvas state together with the HandleKeys binding.
type KeyState struct {
	held map[input.KeyCode]bool
}

// NewKeyState creates an empty KeyState.
func NewKeyState() KeyState {
	return KeyState{held: make(map[input.KeyCode]bool)}
}

// Held reports whether the given key is currently pressed.
func (s *KeyState) Held(code input.KeyCode) bool {
	return s.held[code]
}

// HandleKeys folds key events into a KeyState. For use with the Input
// builder method.
func HandleKeys(_ *Info, s *KeyState, ev input.Event) {
	k, ok := ev.(input.Key)
	if !ok {
		return
	}
	if s.held == nil {
		s.held = make(map[input.KeyCode]bool)
	}
	if k.Pressed {
		s.held[k.Code] = true
	} else {
		delete(s.held, k.Code)
	}
}
