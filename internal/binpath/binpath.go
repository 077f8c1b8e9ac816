// Package binpath locates external binaries a task needs to run.
// A Registry is built once per process and handed to tasks through the runner.
package binpath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// Exported variables.
var (
	ErrBinaryNotFound = errors.New("failed to locate binary")
	ErrNotDirectory   = errors.New("not a readable directory")
	ErrNotExecutable  = errors.New("not an executable file")
)

// Registry maps binary names to verified paths, falling back to searching
// an ordered list of directories.
type Registry struct {
	mu    sync.Mutex
	paths map[string]string
	dirs  []string
}

// New creates a registry whose search directories come from a PATH-style list
// (e.g. os.Getenv("PATH")). Empty and repeated entries are dropped.
func New(pathEnv string) *Registry {
	r := &Registry{paths: map[string]string{}}

	for _, dir := range filepath.SplitList(pathEnv) {
		if dir != "" && !slices.Contains(r.dirs, dir) {
			r.dirs = append(r.dirs, dir)
		}
	}

	return r
}

// AddSearchDir adds a directory to search, at the front when prepend is set.
// A directory already in the list keeps its position.
func (r *Registry) AddSearchDir(dir string, prepend bool) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.Contains(r.dirs, dir) {
		return nil
	}

	if prepend {
		r.dirs = slices.Insert(r.dirs, 0, dir)
	} else {
		r.dirs = append(r.dirs, dir)
	}

	return nil
}

// Dirs returns the search directories in order.
func (r *Registry) Dirs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.dirs)
}

// Lookup returns the path for name: a path set earlier, or the first
// executable found in the search directories, which is then remembered.
func (r *Registry) Lookup(name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if path, ok := r.paths[name]; ok {
		return path, nil
	}

	for _, dir := range r.dirs {
		path := filepath.Join(dir, name)
		if isExecutable(path) {
			r.paths[name] = path
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: '%s'", ErrBinaryNotFound, name)
}

// SetPath records the path for name. The path must be an executable file.
func (r *Registry) SetPath(name, path string) error {
	if !isExecutable(path) {
		return fmt.Errorf("%w: %s", ErrNotExecutable, path)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.paths[name] = path

	return nil
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	return info.Mode().Perm()&0o111 != 0
}
