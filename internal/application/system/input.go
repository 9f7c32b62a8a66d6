package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds one tick of input. Left and Right are held states, the
// rest are edge-triggered presses.
type InputState struct {
	Left   bool
	Right  bool
	Jump   bool
	Fire   bool
	Start  bool
	Select bool
}

// InputSource is polled once per tick.
type InputSource interface {
	GetInput() InputState
}

// KeyBindings maps the game buttons to keys. Each button accepts any of its
// keys.
type KeyBindings struct {
	Left   []ebiten.Key
	Right  []ebiten.Key
	Jump   []ebiten.Key
	Fire   []ebiten.Key
	Start  []ebiten.Key
	Select []ebiten.Key
}

// DefaultKeyBindings returns arrows/WASD movement, Z or Space to jump,
// X to fire, Enter for start and Backspace for select.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:   []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:  []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Jump:   []ebiten.Key{ebiten.KeyZ, ebiten.KeySpace},
		Fire:   []ebiten.Key{ebiten.KeyX},
		Start:  []ebiten.Key{ebiten.KeyEnter},
		Select: []ebiten.Key{ebiten.KeyBackspace},
	}
}

// InputSystem reads the keyboard through ebiten.
type InputSystem struct {
	keys KeyBindings
}

// NewInputSystem creates a new input system
func NewInputSystem(keys KeyBindings) *InputSystem {
	return &InputSystem{keys: keys}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:   anyHeld(s.keys.Left),
		Right:  anyHeld(s.keys.Right),
		Jump:   anyPressed(s.keys.Jump),
		Fire:   anyPressed(s.keys.Fire),
		Start:  anyPressed(s.keys.Start),
		Select: anyPressed(s.keys.Select),
	}
}

func anyHeld(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// ScriptedInput replays a fixed sequence of input states, then reports no
// input. Tests in other packages drive scenes with it.
type ScriptedInput struct {
	frames []InputState
	next   int
}

// NewScriptedInput creates a scripted source over frames.
func NewScriptedInput(frames ...InputState) *ScriptedInput {
	return &ScriptedInput{frames: frames}
}

// GetInput returns the next scripted state.
func (s *ScriptedInput) GetInput() InputState {
	if s.next >= len(s.frames) {
		return InputState{}
	}
	in := s.frames[s.next]
	s.next++
	return in
}

// Remaining returns how many scripted states are left.
func (s *ScriptedInput) Remaining() int {
	return len(s.frames) - s.next
}
