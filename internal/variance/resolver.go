package variance

//go:generate go run go.uber.org/mock/mockgen -destination=variancemock/resolver_mock.go -package=variancemock github.com/lumen-lang/lumen/internal/variance Resolver

import "github.com/lumen-lang/lumen/internal/classmodel"

// Resolver is the cross-module collaborator the fixpoint driver consults
// when a referenced class is neither an ancestor of the root class nor the
// root class itself.
type Resolver interface {
	// LookupClassByQualifiedName resolves a class definition by qualified
	// name. ok is false if the name does not resolve to a class at all.
	LookupClassByQualifiedName(name classmodel.QualifiedName) (*classmodel.ClassDef, bool)

	// ExportVisible reports whether id is exported from module. A module
	// that cannot be found is treated as not exporting anything.
	ExportVisible(module, id string) bool
}
