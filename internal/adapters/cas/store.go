// Package cas persists the per-project analytics client id.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/zerr"
)

// ClientRecord is the on-disk form of the client id.
type ClientRecord struct {
	ClientID  string    `json:"client_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Store implements ports.ClientIDStore with one JSON file per project root.
type Store struct {
	mu    sync.Mutex
	newID func() string
	now   func() time.Time
}

// NewStore creates a Store that generates random UUIDs.
func NewStore() (*Store, error) {
	return &Store{newID: uuid.NewString, now: time.Now}, nil
}

// ClientID returns the client id stored under root, creating it on first use.
func (s *Store) ClientID(root string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filename := filepath.Join(root, domain.DefaultClientIDPath())
	record, err := s.read(filename)
	if err != nil {
		return "", zerr.With(err, "path", filename)
	}
	if record != nil && record.ClientID != "" {
		return record.ClientID, nil
	}

	record = &ClientRecord{ClientID: s.newID(), CreatedAt: s.now().UTC()}
	if err := s.write(filename, record); err != nil {
		return "", zerr.With(err, "path", filename)
	}
	return record.ClientID, nil
}

func (s *Store) read(filename string) (*ClientRecord, error) {
	//nolint:gosec // Path is constructed from the project root and a fixed file name
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var record ClientRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	return &record, nil
}

func (s *Store) write(filename string, record *ClientRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	if err := os.WriteFile(filename, data, domain.PrivateFilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}
