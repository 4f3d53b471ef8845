package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"

	"modthree/internal/digest"
	"modthree/internal/domain"
)

const definitionExt = ".json"

// ErrFingerprintMismatch is returned when a stored document was edited after
// it was saved.
var ErrFingerprintMismatch = errors.New("definition does not match its recorded fingerprint")

// DefinitionFileStore keeps one JSON document per definition under dir.
type DefinitionFileStore struct {
	dir    string
	mu     sync.Mutex
	logger *log.Logger
}

// NewDefinitionFileStore returns a DefinitionFileStore rooted at dir. The
// directory is created on first save. A nil logger discards output.
func NewDefinitionFileStore(dir string, logger *log.Logger) *DefinitionFileStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &DefinitionFileStore{dir: dir, logger: logger}
}

// Dir returns the directory holding the documents.
func (s *DefinitionFileStore) Dir() string { return s.dir }

// SaveDefinition stamps def with its fingerprint and writes it, replacing any
// document with the same name.
func (s *DefinitionFileStore) SaveDefinition(def domain.Definition) error {
	if err := def.Name.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create definition dir: %w", err)
	}
	def.Fingerprint = digest.Fingerprint(def)
	if err := writeJSON(s.path(def.Name), def, 0o600); err != nil {
		return fmt.Errorf("write definition %s: %w", def.Name, err)
	}
	s.logger.Debug("definition saved", "name", def.Name, "fingerprint", def.Fingerprint)
	return nil
}

// LoadDefinition returns the named document and whether it exists.
func (s *DefinitionFileStore) LoadDefinition(name domain.DefinitionName) (domain.Definition, bool, error) {
	if err := name.Validate(); err != nil {
		return domain.Definition{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(s.path(name))
}

// ListDefinitions returns every stored document ordered by name.
func (s *DefinitionFileStore) ListDefinitions() ([]domain.Definition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), definitionExt) {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)

	out := make([]domain.Definition, 0, len(names))
	for _, n := range names {
		def, ok, err := s.load(filepath.Join(s.dir, n))
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, def)
		}
	}
	return out, nil
}

// DeleteDefinition removes the named document and reports whether it existed.
func (s *DefinitionFileStore) DeleteDefinition(name domain.DefinitionName) (bool, error) {
	if err := name.Validate(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	s.logger.Debug("definition deleted", "name", name)
	return true, nil
}

func (s *DefinitionFileStore) load(path string) (domain.Definition, bool, error) {
	var def domain.Definition
	found, err := readJSON(path, &def)
	if err != nil {
		return domain.Definition{}, false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if !found {
		return domain.Definition{}, false, nil
	}
	if !digest.Verify(def) {
		return domain.Definition{}, false, fmt.Errorf("%s: %w", def.Name, ErrFingerprintMismatch)
	}
	return def, true, nil
}

func (s *DefinitionFileStore) path(name domain.DefinitionName) string {
	return filepath.Join(s.dir, name.String()+definitionExt)
}

// Compile-time assertion that DefinitionFileStore implements domain.DefinitionStore.
var _ domain.DefinitionStore = (*DefinitionFileStore)(nil)
