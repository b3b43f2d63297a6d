package library

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned when a document's kind is missing or unrecognized.
var ErrUnknownKind = errors.New("unknown library entry kind")

var validate = validator.New()

// Decode parses every YAML document in data as a library entry. Each document
// must carry a "kind" field naming its variant.
//
// Postcondition: Returns the valid entries in document order, or a non-nil error
// identifying the first bad document.
func Decode(data []byte) ([]Entry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var entries []Entry
	for i := 0; ; i++ {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		e, err := decodeEntry(&node)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		entries = append(entries, e)
	}
}

func decodeEntry(node *yaml.Node) (Entry, error) {
	var head struct {
		Kind Kind `yaml:"kind"`
	}
	if err := node.Decode(&head); err != nil {
		return nil, err
	}
	var e Entry
	switch head.Kind {
	case KindCreature:
		e = &Creature{}
	case KindHazard:
		e = &Hazard{}
	case KindItem:
		e = &Item{}
	case KindClass:
		e = &Class{}
	case KindSpell:
		e = &Spell{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, head.Kind)
	}
	if err := node.Decode(e); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", head.Kind, err)
	}
	if err := validate.Struct(e); err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", head.Kind, e.Meta().ID, err)
	}
	return e, nil
}

// LoadFile reads and decodes a single library file.
//
// Precondition: path must name a readable file.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	entries, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing library file %s: %w", path, err)
	}
	return entries, nil
}

// LoadDir reads all .yaml and .yml files in dir, in lexical order.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed entries (may be empty) or a non-nil error.
func LoadDir(dir string) ([]Entry, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, path := range files {
		fileEntries, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fileEntries...)
	}
	return entries, nil
}

func yamlFiles(dir string) ([]string, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range des {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
