// Package snapshot persists the user's last-known preference state and the
// saved-accounts list as JSON files next to the catalog database.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/savorly/savorly/internal/ports/outbound"
)

const (
	userDataFile = "user_data.json"
	accountsFile = "saved_accounts.json"
)

// FileStore keeps both snapshot files under a single directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot directory %q: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Save overwrites user_data.json atomically.
func (s *FileStore) Save(snap outbound.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.writeAtomic(userDataFile, data)
}

// Load reads user_data.json. A missing file is not an error.
func (s *FileStore) Load() (*outbound.Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, userDataFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap outbound.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode %s: %w", userDataFile, err)
	}
	return &snap, nil
}

// Append records the email in saved_accounts.json once.
func (s *FileStore) Append(email string) error {
	accounts, err := s.List()
	if err != nil {
		return err
	}
	for _, a := range accounts {
		if a == email {
			return nil
		}
	}
	accounts = append(accounts, email)
	data, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return s.writeAtomic(accountsFile, data)
}

// List returns the emails that have logged in on this machine. A missing or
// unreadable file yields an empty list.
func (s *FileStore) List() ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, accountsFile))
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	var accounts []string
	if err := json.Unmarshal(data, &accounts); err != nil {
		return []string{}, nil
	}
	return accounts, nil
}

// writeAtomic writes through a uniquely named temp file and renames it into
// place, so a crash mid-write never leaves a truncated snapshot.
func (s *FileStore) writeAtomic(name string, data []byte) error {
	tmp := filepath.Join(s.dir, fmt.Sprintf(".%s.%s.tmp", name, uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

var (
	_ outbound.SnapshotStore = (*FileStore)(nil)
	_ outbound.AccountsStore = (*FileStore)(nil)
)
