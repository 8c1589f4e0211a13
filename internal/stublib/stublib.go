// Package stublib provides the bundled, read-only index of class skeletons
// for third-party packages the checker has no source for, plus an optional
// on-disk override directory for local patches to those stubs.
package stublib

import (
	"sync"

	semver "github.com/Masterminds/semver/v3"

	"github.com/lumen-lang/lumen/internal/classmodel"
)

// Package is one bundled stub package: the classes it declares, and the
// minimum host-language version it requires. A stub whose MinVersion the
// current target version fails is skipped by the index, not treated as a
// fatal error.
type Package struct {
	Path       string
	MinVersion *semver.Version
	Classes    map[string]*classmodel.ClassDef
}

// Index is a lazily-initialized, read-only stub library. It is populated
// once via sync.Once from the seed packages given to NewIndex, then only
// mutated through Invalidate, which clears a single package's entry (used by
// the override watcher), and Reload, which installs a replacement. Each
// Index built by NewIndex is independent; the package keeps no global
// instance.
type Index struct {
	once sync.Once
	seed []Package

	mu       sync.RWMutex
	packages map[string]*Package
}

// NewIndex builds an index that will lazily populate itself from seed the
// first time Lookup, Invalidate or Reload is called.
func NewIndex(seed ...Package) *Index {
	return &Index{seed: seed}
}

func (idx *Index) ensureLoaded() {
	idx.once.Do(func() {
		idx.mu.Lock()
		defer idx.mu.Unlock()
		idx.packages = make(map[string]*Package, len(idx.seed))
		for i := range idx.seed {
			p := idx.seed[i]
			idx.packages[p.Path] = &p
		}
	})
}

// Lookup resolves a class from a bundled stub package, gated by the
// package's MinVersion: a stub that requires a newer host version than
// targetVersion is treated as absent, exactly like an unresolved
// cross-module class. A nil MinVersion or nil targetVersion skips the gate.
func (idx *Index) Lookup(path, id string, targetVersion *semver.Version) (*classmodel.ClassDef, bool) {
	idx.ensureLoaded()

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	p, ok := idx.packages[path]
	if !ok {
		return nil, false
	}
	if p.MinVersion != nil && targetVersion != nil && targetVersion.LessThan(p.MinVersion) {
		return nil, false
	}
	c, ok := p.Classes[id]
	return c, ok
}

// Invalidate drops a single package from the loaded index, so the next
// Lookup for it falls through to whatever Reload installs. Called by the
// override watcher when a stub file on disk changes.
func (idx *Index) Invalidate(path string) {
	idx.ensureLoaded()
	idx.mu.Lock()
	defer idx.mu.Unlock()
	delete(idx.packages, path)
}

// Reload installs a replacement Package, e.g. after Invalidate. The override
// watcher does not parse override files or call Reload; it only invalidates.
func (idx *Index) Reload(p Package) {
	idx.ensureLoaded()
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.packages[p.Path] = &p
}
