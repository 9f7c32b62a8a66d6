// Package scene defines the Scene interface for game screens.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to end the game without a failure.
var ErrQuit = errors.New("quit")

// Scene is one game screen. The game loop delegates Update and Draw to the
// current scene; a scene hands over to another by returning it from Update.
type Scene interface {
	// Update advances the scene by one fixed tick. It returns the next scene,
	// or nil to stay. An error terminates the game.
	Update() (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced.
	OnExit()
}
