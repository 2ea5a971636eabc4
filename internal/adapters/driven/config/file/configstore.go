package file

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/ghtrend/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

const (
	// DirName is the config directory created under the user's home.
	DirName = ".ghtrend"

	// FileName is the settings file inside the config directory.
	FileName = "config.toml"
)

// ConfigStore keeps settings in a TOML file. The file is read once when
// the store is opened and rewritten whole on every Put.
type ConfigStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]any
}

// DefaultDir returns ~/.ghtrend.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// NewConfigStore opens the settings file in configDir, creating the
// directory if needed. An empty configDir means DefaultDir.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	path := filepath.Join(configDir, FileName)
	values, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return &ConfigStore{path: path, values: values}, nil
}

// Lookup returns the value stored under a dotted key.
func (s *ConfigStore) Lookup(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Put merges values into the store and rewrites the file. The in-memory
// values only change once the file has been written.
func (s *ConfigStore) Put(values map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := maps.Clone(s.values)
	maps.Copy(next, values)

	if err := writeFile(s.path, next); err != nil {
		return err
	}
	s.values = next
	return nil
}

// Location returns the settings file path.
func (s *ConfigStore) Location() string {
	return s.path
}

// readFile loads path into dotted keys. A missing file reads as empty.
func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	values := map[string]any{}
	flatten(values, "", doc)
	return values, nil
}

// writeFile writes values as TOML tables through a temporary file, so a
// failed write never leaves a truncated config behind.
func writeFile(path string, values map[string]any) error {
	data, err := toml.Marshal(tables(values))
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), FileName+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// flatten copies the leaves of doc into dst under dotted keys.
func flatten(dst map[string]any, prefix string, doc map[string]any) {
	for k, v := range doc {
		if prefix != "" {
			k = prefix + "." + k
		}
		if table, ok := v.(map[string]any); ok {
			flatten(dst, k, table)
			continue
		}
		dst[k] = v
	}
}

// tables turns dotted keys back into nested tables. When a key is both a
// value and the prefix of another key, the value is kept.
func tables(values map[string]any) map[string]any {
	root := map[string]any{}

	// Sorted order visits "a" before "a.b".
	for _, key := range slices.Sorted(maps.Keys(values)) {
		path := strings.Split(key, ".")
		if parent := table(root, path[:len(path)-1]); parent != nil {
			parent[path[len(path)-1]] = values[key]
		}
	}
	return root
}

// table walks path from root, creating tables on the way. It returns nil
// if a scalar already sits somewhere on the path.
func table(root map[string]any, path []string) map[string]any {
	node := root
	for _, name := range path {
		child, exists := node[name]
		if !exists {
			child = map[string]any{}
			node[name] = child
		}
		next, ok := child.(map[string]any)
		if !ok {
			return nil
		}
		node = next
	}
	return node
}
