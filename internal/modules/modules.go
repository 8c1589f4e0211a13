// Package modules provides a thread-safe registry of module exports and
// class definitions, the cross-module collaborator the variance engine
// consults through the variance.Resolver interface.
package modules

import (
	"fmt"
	"sync"

	semver "github.com/Masterminds/semver/v3"

	"github.com/lumen-lang/lumen/internal/classmodel"
)

// Path is a module's import path, e.g. "collections.abc" or "myapp.models".
type Path string

// ModuleSpec describes one version of a module as published into the
// registry: the classes it defines and the identifiers it re-exports.
type ModuleSpec struct {
	Path    Path
	Version *semver.Version

	// Classes indexes this module's own class definitions by identifier.
	Classes map[string]*classmodel.ClassDef

	// Exported lists the identifiers visible to importers: a class defined
	// here, or an identifier re-exported from elsewhere. An identifier
	// absent from this set is private to the module even if present in
	// Classes.
	Exported map[string]bool
}

// NewModuleSpec builds an empty module at the given version string, parsed
// as a Masterminds/semver version. It panics on a malformed version string,
// since module versions are fixed at registration time by the caller, not
// derived from untrusted input.
func NewModuleSpec(path Path, version string) *ModuleSpec {
	v, err := semver.NewVersion(version)
	if err != nil {
		panic(fmt.Sprintf("modules: invalid version %q for module %q: %v", version, path, err))
	}
	return &ModuleSpec{
		Path:     path,
		Version:  v,
		Classes:  make(map[string]*classmodel.ClassDef),
		Exported: make(map[string]bool),
	}
}

// Define adds a class to the module and marks it exported.
func (m *ModuleSpec) Define(c *classmodel.ClassDef) *ModuleSpec {
	id := c.QName().ID
	m.Classes[id] = c
	m.Exported[id] = true
	return m
}

// DefinePrivate adds a class to the module without exporting it, for fixture
// and test construction of the "missing export" recoverable path.
func (m *ModuleSpec) DefinePrivate(c *classmodel.ClassDef) *ModuleSpec {
	m.Classes[c.QName().ID] = c
	return m
}

// Reexport marks an identifier defined in another module as exported from
// this one too, without copying its ClassDef.
func (m *ModuleSpec) Reexport(id string) *ModuleSpec {
	m.Exported[id] = true
	return m
}

// Registry is a thread-safe collection of modules, keyed by path, each
// holding at most one installed version (last one registered wins — this
// models a resolved build graph, not a multi-version package index).
type Registry struct {
	mu      sync.RWMutex
	modules map[Path]*ModuleSpec
}

func NewRegistry() *Registry {
	return &Registry{modules: make(map[Path]*ModuleSpec)}
}

// Register installs spec, replacing any module previously registered at the
// same path regardless of version.
func (r *Registry) Register(spec *ModuleSpec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules[spec.Path] = spec
}

// Module returns the currently installed spec for path, if any.
func (r *Registry) Module(path Path) (*ModuleSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[path]
	return m, ok
}

// Satisfies reports whether the module installed at path meets constraint,
// so a collaborator that depends on a minimum module version can fail
// closed rather than silently using an incompatible one.
func (r *Registry) Satisfies(path Path, constraint string) (bool, error) {
	r.mu.RLock()
	m, ok := r.modules[path]
	r.mu.RUnlock()
	if !ok {
		return false, nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("modules: invalid constraint %q: %w", constraint, err)
	}
	return c.Check(m.Version), nil
}

// LookupClassByQualifiedName implements variance.Resolver: it resolves a
// class by its (module, id) pair regardless of whether id is exported.
// Export gating is a separate, explicit step (ExportVisible) so the
// fixpoint driver's "missing export" path stays distinguishable from
// "module not found".
func (r *Registry) LookupClassByQualifiedName(name classmodel.QualifiedName) (*classmodel.ClassDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[Path(name.Module)]
	if !ok {
		return nil, false
	}
	c, ok := m.Classes[name.ID]
	return c, ok
}

// ExportVisible implements variance.Resolver: it reports whether id is
// visible to importers of module. A module with nothing registered at that
// path exports nothing.
func (r *Registry) ExportVisible(module, id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[Path(module)]
	if !ok {
		return false
	}
	return m.Exported[id]
}
