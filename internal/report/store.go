package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pricehunt/amazon-price-tracker/internal/models"
)

// Store keeps run reports as JSON documents in one directory, one
// file per run title. Writes are atomic (temp file then rename) so a
// crashed run never leaves a half-written report behind.
type Store struct {
	mu  sync.RWMutex
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Write(r models.Report) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to serialize report: %w", err)
	}

	path := s.path(r.Title)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("failed to finalize report: %w", err)
	}
	return path, nil
}

func (s *Store) Get(title string) (*models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(title))
	if err != nil {
		return nil, err
	}
	var r models.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", title, err)
	}
	return &r, nil
}

// List returns the titles of every stored report.
func (s *Store) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	titles := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		titles = append(titles, strings.TrimSuffix(name, ".json"))
	}
	return titles, nil
}

func (s *Store) path(title string) string {
	return filepath.Join(s.dir, title+".json")
}
