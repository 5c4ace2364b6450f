package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/credistore/credistore_backend/internal/core/domain"
)

// Persister is the durable side of the store. Load reports found=false when
// no prior state exists, which is not an error on first run.
type Persister interface {
	Load() (doc domain.BackupDocument, found bool, err error)
	Persist(doc domain.BackupDocument) error
}

// FilePersister writes the store document to a single JSON file, replacing it
// atomically via a temp file and rename.
type FilePersister struct {
	path string
}

// NewFilePersister creates a persister for the given file path.
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

// Load reads and decodes the document from disk.
func (p *FilePersister) Load() (domain.BackupDocument, bool, error) {
	var doc domain.BackupDocument
	raw, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, false, nil
	}
	if err != nil {
		return doc, false, fmt.Errorf("failed to read store file %s: %w", p.path, err)
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, false, fmt.Errorf("failed to decode store file %s: %w", p.path, err)
	}
	return doc, true, nil
}

// Persist encodes the document and replaces the file on disk.
func (p *FilePersister) Persist(doc domain.BackupDocument) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store document: %w", err)
	}
	tmp := p.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
