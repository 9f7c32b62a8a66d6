package playing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/younwookim/ninjarun/internal/application/replay"
	"github.com/younwookim/ninjarun/internal/application/system"
)

// ErrNoFrames is returned when saving a recording that captured nothing.
var ErrNoFrames = errors.New("no frames recorded")

// Recorder captures one input state per tick so a run can be replayed.
type Recorder struct {
	data    replay.ReplayData
	stopped bool
}

// NewRecorder starts a recording. seed and bounce must be the values the
// session started with.
func NewRecorder(seed int64, level string, bounce bool) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.Version,
			Seed:      seed,
			Level:     level,
			Bounce:    bounce,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600),
		},
	}
}

// RecordFrame appends in as the next frame. It is a no-op once stopped.
func (r *Recorder) RecordFrame(in system.InputState) {
	if r.stopped {
		return
	}
	r.data.Frames = append(r.data.Frames, replay.NewFrameInput(len(r.data.Frames), in))
}

// Save writes the recording to path. The file is replaced atomically so an
// autosave never leaves a truncated replay behind.
func (r *Recorder) Save(path string) (err error) {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".replay-*")
	if err != nil {
		return fmt.Errorf("save replay: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = replay.Encode(tmp, r.data); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("save replay: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save replay: %w", err)
	}
	return nil
}

func (r *Recorder) Stop()             { r.stopped = true }
func (r *Recorder) IsRecording() bool { return !r.stopped }
func (r *Recorder) FrameCount() int   { return len(r.data.Frames) }

// Data returns the recording so far.
func (r *Recorder) Data() replay.ReplayData {
	return r.data
}

// GenerateFilename names a replay after the current time.
func GenerateFilename() string {
	return "replay_" + time.Now().Format("20060102_150405") + ".json"
}
