package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hireloop/intervu-backend/internal/model"
)

// document is the on-disk layout: one JSON blob holding everything.
type document struct {
	Sessions   map[string]*model.Session `json:"sessions"`
	Candidates []model.Candidate         `json:"candidates"`
}

// FileStore persists the whole dataset as a single JSON document, read and
// rewritten wholesale per operation. Acceptable at this scale; there is no
// partial-update or WAL discipline.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a FileStore backed by the given path, initializing an
// empty document if the file does not exist yet.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		if err := fs.write(&document{Sessions: map[string]*model.Session{}}); err != nil {
			return nil, err
		}
	}
	return fs, nil
}

func (f *FileStore) read() (*document, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	doc := &document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("decode data file: %w", err)
	}
	if doc.Sessions == nil {
		doc.Sessions = map[string]*model.Session{}
	}
	return doc, nil
}

// write replaces the document atomically (temp file + rename) so a crash
// mid-write never leaves a truncated database behind.
func (f *FileStore) write(doc *document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

func (f *FileStore) GetSession(_ context.Context, id string) (*model.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.read()
	if err != nil {
		return nil, err
	}
	s, ok := doc.Sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (f *FileStore) PutSession(_ context.Context, s *model.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.read()
	if err != nil {
		return err
	}
	doc.Sessions[s.ID] = s.Clone()
	return f.write(doc)
}

func (f *FileStore) DeleteSession(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := doc.Sessions[id]; !ok {
		return ErrNotFound
	}
	delete(doc.Sessions, id)
	return f.write(doc)
}

func (f *FileStore) AppendCandidate(_ context.Context, c *model.Candidate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.read()
	if err != nil {
		return err
	}
	doc.Candidates = append(doc.Candidates, *c)
	return f.write(doc)
}

func (f *FileStore) ListCandidates(_ context.Context) ([]model.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.read()
	if err != nil {
		return nil, err
	}
	return doc.Candidates, nil
}

func (f *FileStore) GetCandidate(_ context.Context, id string) (*model.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Candidates {
		if doc.Candidates[i].ID == id {
			c := doc.Candidates[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}
