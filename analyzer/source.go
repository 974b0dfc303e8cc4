package analyzer

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/npillmayer/predict/ll"
)

// ErrGrammarNotFound is returned by sources for unknown grammar names.
const ErrGrammarNotFound = ll.ConstError("grammar not found")

// Source is a collection of named grammar texts.
type Source interface {
	Names() ([]string, error)         // names of the available grammars
	Load(name string) (string, error) // grammar text, or ErrGrammarNotFound
}

// DirSource is a directory of grammar files with extension ".txt".
type DirSource struct {
	Dir string
}

var _ Source = DirSource{}

// Names lists the grammar files of the directory, in lexical order.
func (d DirSource) Names() ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(d.Dir, "*.txt"))
	if err != nil {
		return nil, err
	}
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	sort.Strings(names)
	return names, nil
}

// Load reads a grammar file. The extension ".txt" may be omitted.
// Names must not contain directory parts.
func (d DirSource) Load(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q is not a file name in %s", ErrGrammarNotFound, name, d.Dir)
	}
	if filepath.Ext(name) == "" {
		name += ".txt"
	}
	text, err := ioutil.ReadFile(filepath.Join(d.Dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s in %s", ErrGrammarNotFound, name, d.Dir)
		}
		return "", err
	}
	return string(text), nil
}

// MapSource is an in-memory collection of grammars, keyed by name.
type MapSource map[string]string

var _ Source = MapSource{}

// Names lists the grammar names in lexical order.
func (m MapSource) Names() ([]string, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Load returns the grammar text for a name.
func (m MapSource) Load(name string) (string, error) {
	text, ok := m[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrGrammarNotFound, name)
	}
	return text, nil
}
