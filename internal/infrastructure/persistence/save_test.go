package persistence

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBackend struct {
	items   map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newMemBackend() *memBackend {
	return &memBackend{items: make(map[string][]byte)}
}

func (m *memBackend) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memBackend) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.items[key] = data
	return nil
}

func (m *memBackend) record(t *testing.T) record {
	t.Helper()
	var rec record
	require.NoError(t, json.Unmarshal(m.items[itemKey], &rec))
	return rec
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestStore_LoadFreshStorage(t *testing.T) {
	backend := newMemBackend()
	store := New(backend, testLogger())

	assert.False(t, store.LoadBounce())

	rec := backend.record(t)
	assert.Equal(t, FormatTag, rec.FormatTag)
	assert.False(t, rec.Bounce)
}

func TestStore_LoadCorruptStorage(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"garbage", "\x00\x01not json"},
		{"wrong tag", `{"formatTag":12,"bounce":true}`},
		{"no tag", `{"bounce":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newMemBackend()
			backend.items[itemKey] = []byte(tt.data)
			store := New(backend, testLogger())

			assert.False(t, store.LoadBounce())

			rec := backend.record(t)
			assert.Equal(t, FormatTag, rec.FormatTag)
			assert.False(t, rec.Bounce)
		})
	}
}

func TestStore_SaveThenLoad(t *testing.T) {
	backend := newMemBackend()
	store := New(backend, testLogger())

	require.NoError(t, store.SaveBounce(true))
	assert.True(t, store.LoadBounce())

	require.NoError(t, store.SaveBounce(false))
	assert.False(t, store.LoadBounce())
	assert.Equal(t, 2, backend.saves, "valid records are not rewritten on load")
}

func TestStore_BackendErrors(t *testing.T) {
	backend := newMemBackend()
	backend.loadErr = errors.New("disk gone")
	backend.saveErr = errors.New("read-only")
	store := New(backend, testLogger())

	assert.False(t, store.LoadBounce())

	err := store.SaveBounce(true)
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.saveErr)
}
