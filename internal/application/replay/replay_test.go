package replay

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ninjarun/internal/application/system"
)

func TestFrameInput_CarriesEveryButton(t *testing.T) {
	in := system.InputState{Left: true, Jump: true, Fire: true, Start: true, Select: true}

	fi := NewFrameInput(7, in)

	assert.Equal(t, 7, fi.F)
	assert.Equal(t, in, fi.Input())
}

func TestFrameInput_OmitsReleasedButtons(t *testing.T) {
	data, err := json.Marshal(NewFrameInput(3, system.InputState{Right: true}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":3,"r":true}`, string(data))
}

func TestReplayer_Playback(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Level:   "demo",
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, J: true},
			{F: 2, B: true},
		},
	}

	r := NewReplayer(data)
	var _ system.InputSource = r

	assert.Equal(t, 3, r.TotalFrames())
	assert.Equal(t, int64(42), r.Seed())

	in, ok := r.Next()
	require.True(t, ok)
	assert.True(t, in.Left)

	assert.Equal(t, system.InputState{Right: true, Jump: true}, r.GetInput())
	assert.Equal(t, system.InputState{Fire: true}, r.GetInput())
	assert.True(t, r.Done())
	assert.Equal(t, 3, r.CurrentFrame())

	_, ok = r.Next()
	assert.False(t, ok)
	assert.Equal(t, system.InputState{}, r.GetInput(), "no input past the end")

	r.Reset()
	assert.Equal(t, 0, r.CurrentFrame())
	assert.False(t, r.Done())
}

func TestDecode(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		data, err := Decode(strings.NewReader(
			`{"version":"2.0","seed":9,"level":"demo","bounce":true,"frames":[{"f":0,"st":true}]}`))
		require.NoError(t, err)
		assert.True(t, data.Bounce)
		require.Len(t, data.Frames, 1)
		assert.True(t, data.Frames[0].Input().Start)
	})

	t.Run("old version", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`{"version":"1.0","frames":[]}`))
		assert.ErrorContains(t, err, "unsupported replay version")
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`not json`))
		assert.Error(t, err)
	})
}

func TestLoadReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"2.0","seed":1,"frames":[{"f":0}]}`), 0o644))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.Seed)

	_, err = LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestEncode_DecodesBack(t *testing.T) {
	data := ReplayData{Version: Version, Seed: 9, Level: "demo", Bounce: true,
		Frames: []FrameInput{{F: 0, St: true}, {F: 1, Se: true}}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, data))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, data, *got)
}
