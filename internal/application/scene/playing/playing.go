// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/ninjarun/internal/application/scene"
	"github.com/younwookim/ninjarun/internal/application/session"
	"github.com/younwookim/ninjarun/internal/application/state"
	"github.com/younwookim/ninjarun/internal/application/system"
	"github.com/younwookim/ninjarun/internal/domain/fixed"
	"github.com/younwookim/ninjarun/internal/infrastructure/render"
)

// finite is implemented by input sources that run out, such as replays.
type finite interface {
	Done() bool
}

// Options configures the scene.
type Options struct {
	Session  *session.Session
	Input    system.InputSource
	Registry *render.Registry
	Renderer *render.Renderer // nil for headless runs
	Logger   *log.Logger

	// Recorder, when set, captures every tick's input. The recording is
	// written to RecordPath (or a generated name) on game over, on F5 and on
	// exit.
	Recorder   *Recorder
	RecordPath string

	// GroundTop is the world y of the ground plane's top edge.
	GroundTop fixed.Fixed
	// ShowStatus prints a debug line at the bottom of the screen.
	ShowStatus bool
}

// Playing is the main gameplay scene
type Playing struct {
	session  *session.Session
	input    system.InputSource
	registry *render.Registry
	renderer *render.Renderer
	logger   *log.Logger

	recorder   *Recorder
	recordPath string

	groundTop  fixed.Fixed
	showStatus bool
	paused     bool
}

// New creates a new Playing scene.
func New(opts Options) *Playing {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Playing{
		session:    opts.Session,
		input:      opts.Input,
		registry:   opts.Registry,
		renderer:   opts.Renderer,
		logger:     logger,
		recorder:   opts.Recorder,
		recordPath: opts.RecordPath,
		groundTop:  opts.GroundTop,
		showStatus: opts.ShowStatus,
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.paused = !p.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}
	if p.paused {
		return nil, nil
	}

	return nil, p.Step()
}

// Step runs one simulation tick with the next input. It returns
// scene.ErrQuit once a finite input source is exhausted.
func (p *Playing) Step() error {
	if f, ok := p.input.(finite); ok && f.Done() {
		return scene.ErrQuit
	}

	in := p.input.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	wasOver := p.session.State() == state.StateGameOver
	p.session.Tick(in)
	p.registry.Update()

	if !wasOver && p.session.State() == state.StateGameOver {
		p.saveRecording()
	}
	return nil
}

// State returns the displayed state, including pause.
func (p *Playing) State() state.GameState {
	if p.paused {
		return state.StatePaused
	}
	return p.session.State()
}

func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "error", err)
		return
	}
	p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	if p.renderer == nil {
		return
	}

	cam := p.session.Camera()
	p.renderer.Draw(screen, cam.X, cam.Y, p.groundTop)

	if p.showStatus {
		p.renderer.DrawStatus(screen, p.status())
	}

	switch p.State() {
	case state.StatePaused:
		p.renderer.DrawPaused(screen)
	case state.StateGameOver:
		p.renderer.DrawGameOver(screen)
	}
}

func (p *Playing) status() string {
	c := p.session.Counters()
	return fmt.Sprintf("bounce:%t enemies:%t respawn:%d",
		p.session.Bounce(), p.session.EnemiesActive(), c.FramesBeforeRespawn)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit flushes any recording.
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
}
