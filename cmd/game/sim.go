package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/ninjarun/internal/application/replay"
	"github.com/younwookim/ninjarun/internal/application/scene"
	"github.com/younwookim/ninjarun/internal/application/scene/playing"
	"github.com/younwookim/ninjarun/internal/application/session"
	"github.com/younwookim/ninjarun/internal/application/state"
	"github.com/younwookim/ninjarun/internal/domain/fixed"
	"github.com/younwookim/ninjarun/internal/infrastructure/render"
)

var simCmd = &cobra.Command{
	Use:   "sim <replay>",
	Short: "Run a replay headlessly and print the outcome",
	Long: `Run a recorded replay without opening a window. The replay's seed,
level and bounce flag are used; --level only applies when the replay does not
name one.`,
	Args: cobra.ExactArgs(1),
	RunE: runSimCmd,
}

// simResult is the session state after the last replayed frame.
type simResult struct {
	Frames  int
	State   state.GameState
	Hearts  int
	Enemies int
	PlayerX fixed.Fixed
	PlayerY fixed.Fixed
	Bounce  bool
}

func (r simResult) String() string {
	return fmt.Sprintf("frames=%d state=%s hearts=%d enemies=%d player=(%s,%s) bounce=%t",
		r.Frames, r.State, r.Hearts, r.Enemies, r.PlayerX, r.PlayerY, r.Bounce)
}

func runSimCmd(cmd *cobra.Command, args []string) error {
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}

	loader, err := configLoader(flagConfigDir)
	if err != nil {
		return err
	}
	name := data.Level
	if name == "" {
		name = flagLevel
	}
	a, err := loadAssets(loader, name)
	if err != nil {
		return err
	}

	res, err := runSim(a, data, newLogger(os.Stderr, a.cfg))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), res)
	return err
}

// runSim plays data against a fresh session until the replay runs out.
func runSim(a *assets, data *replay.ReplayData, logger *log.Logger) (simResult, error) {
	registry := render.NewRegistry(a.cfg.Sprites)
	s, err := session.New(session.Options{
		Config:  a.cfg,
		Level:   a.level,
		Factory: registry,
		Store:   fixedBounce(data.Bounce),
		Rand:    rand.New(rand.NewSource(data.Seed)),
		Logger:  logger,
	})
	if err != nil {
		return simResult{}, fmt.Errorf("start session: %w", err)
	}

	scn := playing.New(playing.Options{
		Session:  s,
		Input:    replay.NewReplayer(*data),
		Registry: registry,
		Logger:   logger,
	})
	for {
		err := scn.Step()
		if errors.Is(err, scene.ErrQuit) {
			break
		}
		if err != nil {
			return simResult{}, err
		}
	}

	p := s.Player()
	return simResult{
		Frames:  s.Frame(),
		State:   s.State(),
		Hearts:  s.Hearts(),
		Enemies: s.Enemies().Len(),
		PlayerX: p.X,
		PlayerY: p.Y,
		Bounce:  s.Bounce(),
	}, nil
}
