package replay

import "github.com/younwookim/ninjarun/internal/application/system"

// Version is the replay format version written by this build.
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left held
	R  bool `json:"r,omitempty"`  // Right held
	J  bool `json:"j,omitempty"`  // Jump pressed
	B  bool `json:"b,omitempty"`  // Fire pressed
	St bool `json:"st,omitempty"` // Start pressed
	Se bool `json:"se,omitempty"` // Select pressed
}

// NewFrameInput captures in as frame f.
func NewFrameInput(f int, in system.InputState) FrameInput {
	return FrameInput{
		F:  f,
		L:  in.Left,
		R:  in.Right,
		J:  in.Jump,
		B:  in.Fire,
		St: in.Start,
		Se: in.Select,
	}
}

// Input returns the recorded input state.
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:   fi.L,
		Right:  fi.R,
		Jump:   fi.J,
		Fire:   fi.B,
		Start:  fi.St,
		Select: fi.Se,
	}
}

// ReplayData contains all data needed to replay a game session. Seed drives
// enemy spawns and Bounce is the bounce flag at the first frame.
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     string       `json:"level"`
	Bounce    bool         `json:"bounce"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
