package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Progress records a reader's position in one document.
type Progress struct {
	Chapter   int       `json:"chapter"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProgressStore persists reading positions in a single JSON file keyed by
// document ID. Loads are best-effort: a missing or corrupt file starts an
// empty store rather than failing startup.
type ProgressStore struct {
	mu   sync.RWMutex
	path string
	data map[string]Progress
}

func NewProgressStore(path string) (*ProgressStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create progress dir: %w", err)
	}
	s := &ProgressStore{
		path: path,
		data: make(map[string]Progress),
	}
	if err := s.load(); err != nil {
		s.data = make(map[string]Progress)
	}
	return s, nil
}

func (s *ProgressStore) Get(id string) (Progress, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.data[id]
	return p, ok
}

func (s *ProgressStore) Set(id string, chapter int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = Progress{
		Chapter:   chapter,
		UpdatedAt: time.Now(),
	}
	return s.save()
}

func (s *ProgressStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &s.data)
}

func (s *ProgressStore) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}
