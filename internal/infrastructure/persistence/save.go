// Package persistence stores the player's bounce-mode setting between runs.
//
// The record carries a format tag. A record with any other tag (or none) is
// treated as uninitialised storage: the default is returned and a fresh record
// is written back.
package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// FormatTag identifies a valid save record.
const FormatTag = 721

const itemKey = "save"

// Backend is the key/value storage a Store writes to. *gdata.Manager
// satisfies it.
type Backend interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

type record struct {
	FormatTag int  `json:"formatTag"`
	Bounce    bool `json:"bounce"`
}

// Store reads and writes the bounce flag.
type Store struct {
	backend Backend
	logger  *log.Logger
}

// New creates a store on top of backend.
func New(backend Backend, logger *log.Logger) *Store {
	return &Store{backend: backend, logger: logger}
}

// OpenGData opens the per-user data directory for appName.
func OpenGData(appName string, logger *log.Logger) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return New(m, logger), nil
}

// LoadBounce returns the saved bounce flag. Missing or foreign data yields
// false and is overwritten with a valid record.
func (s *Store) LoadBounce() bool {
	rec, ok := s.read()
	if ok {
		return rec.Bounce
	}

	s.logger.Info("save data not initialised, writing defaults", "formatTag", FormatTag)
	if err := s.write(record{FormatTag: FormatTag, Bounce: false}); err != nil {
		s.logger.Warn("could not initialise save data", "error", err)
	}
	return false
}

// SaveBounce persists the bounce flag.
func (s *Store) SaveBounce(bounce bool) error {
	if err := s.write(record{FormatTag: FormatTag, Bounce: bounce}); err != nil {
		s.logger.Warn("could not save bounce setting", "error", err)
		return err
	}
	return nil
}

func (s *Store) read() (record, bool) {
	data, err := s.backend.LoadItem(itemKey)
	if err != nil {
		s.logger.Debug("could not load save data", "error", err)
		return record{}, false
	}
	if data == nil {
		return record{}, false
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		s.logger.Debug("could not parse save data", "error", err)
		return record{}, false
	}
	if rec.FormatTag != FormatTag {
		return record{}, false
	}
	return rec, true
}

func (s *Store) write(rec record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode save data: %w", err)
	}
	if err := s.backend.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("write save data: %w", err)
	}
	return nil
}
