// Package configfile loads the launcher configuration document from a YAML
// file. The file is re-read on every Load call, trading I/O cost for
// freshness: edits take effect on the next request without a restart.
package configfile

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/navicula/navicula/internal/core/domain"
)

type Store struct {
	path     string
	validate *validator.Validate
}

func New(path string) *Store {
	return &Store{path: path, validate: validator.New()}
}

// Load reads, parses, and validates the configuration document.
func (s *Store) Load(ctx context.Context) (*domain.Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", s.path, err)
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", s.path, err)
	}
	if err := s.validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", s.path, err)
	}

	return &cfg, nil
}
