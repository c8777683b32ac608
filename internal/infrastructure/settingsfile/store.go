// Package settingsfile persists the shared per-user settings structure in a
// single YAML document with whole-structure read-modify-write semantics.
package settingsfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/navicula/navicula/internal/core/domain"
)

// Store is a file-backed SettingsRepository. A process-wide mutex
// serializes every read-modify-write cycle so concurrent updates cannot
// silently discard each other's changes.
type Store struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Store {
	return &Store{path: path}
}

// LoadUser returns the settings for userID. A store file that does not
// exist yet yields an empty mapping.
func (s *Store) LoadUser(ctx context.Context, userID string) (domain.UserAppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.readAll()
	if err != nil {
		return nil, err
	}
	settings, ok := all[userID]
	if !ok {
		return domain.UserAppSettings{}, nil
	}
	return settings, nil
}

// ReplaceUser rewrites the whole persisted structure with userID's entry
// replaced. An empty mapping removes the user entirely; the persisted form
// never contains empty leaves. A read failure other than non-existence
// aborts without writing.
func (s *Store) ReplaceUser(ctx context.Context, userID string, settings domain.UserAppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.readAll()
	if err != nil {
		return err
	}

	if len(settings) == 0 {
		delete(all, userID)
	} else {
		all[userID] = settings
	}

	data, err := yaml.Marshal(all)
	if err != nil {
		return fmt.Errorf("%w: marshal settings: %v", domain.ErrSettingsUnavailable, err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrSettingsUnavailable, s.path, err)
	}
	return nil
}

func (s *Store) readAll() (domain.AllUserSettings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.AllUserSettings{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrSettingsUnavailable, s.path, err)
	}

	var all domain.AllUserSettings
	if err := yaml.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrSettingsUnavailable, s.path, err)
	}
	if all == nil {
		all = domain.AllUserSettings{}
	}
	return all, nil
}
