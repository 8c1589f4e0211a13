package variance

import "github.com/lumen-lang/lumen/internal/classmodel"

// TParam is one entry of a class's type-parameter array: its declaration
// name, the current best-known variance, and whether the parameter has been
// observed at least once under an injective type-constructor position
// (explicitly declared parameters start out true).
type TParam struct {
	Name string
	V    Variance
	Inj  bool
}

// TParamArray is the ordered, arity-length array of a class's parameters.
// Order matches declaration order; it is never reordered, only the V/Inj
// components are monotonically joined upward by the fixpoint driver.
type TParamArray []TParam

// Find returns the index of the parameter named name, or -1 if absent.
func (a TParamArray) Find(name string) int {
	for i := range a {
		if a[i].Name == name {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy, so the fixpoint driver can compare the
// joined result against the pre-iteration snapshot.
func (a TParamArray) Clone() TParamArray {
	out := make(TParamArray, len(a))
	copy(out, a)
	return out
}

// Equal reports whether two arrays have identical entries in the same order.
func (a TParamArray) Equal(b TParamArray) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// VarianceEnv is the fixpoint environment: a mapping from a class's
// qualified name to its current best-known TParamArray. Insertion order is
// preserved via order, since map iteration order in Go is randomized and the
// fixpoint driver must visit entries in deterministic (insertion) order for
// reproducible diagnostics, even though the final fixpoint does not depend
// on visitation order.
type VarianceEnv struct {
	order   []classmodel.QualifiedName
	entries map[classmodel.QualifiedName]TParamArray
}

func NewVarianceEnv() *VarianceEnv {
	return &VarianceEnv{entries: make(map[classmodel.QualifiedName]TParamArray)}
}

func (e *VarianceEnv) Get(name classmodel.QualifiedName) (TParamArray, bool) {
	v, ok := e.entries[name]
	return v, ok
}

// Set inserts or overwrites the array for name, tracking insertion order the
// first time name is seen.
func (e *VarianceEnv) Set(name classmodel.QualifiedName, params TParamArray) {
	if _, exists := e.entries[name]; !exists {
		e.order = append(e.order, name)
	}
	e.entries[name] = params
}

// Names returns the classes currently tracked, in insertion order.
func (e *VarianceEnv) Names() []classmodel.QualifiedName {
	out := make([]classmodel.QualifiedName, len(e.order))
	copy(out, e.order)
	return out
}

func (e *VarianceEnv) Len() int { return len(e.order) }

// preToPost maps a pre-inference (user-declared) variance to its
// post-inference starting point: Undefined becomes Bivariant and marks the
// class as containing at least one inferable parameter.
func preToPost(pre classmodel.PreVariance) (v Variance, wasUndefined bool) {
	switch pre {
	case classmodel.DeclaredCovariant:
		return Covariant, false
	case classmodel.DeclaredContravariant:
		return Contravariant, false
	case classmodel.DeclaredInvariant:
		return Invariant, false
	default:
		return Bivariant, true
	}
}

// seedParams builds the initial TParamArray for a class's own declaration,
// without walking it: inj=false exactly when the starting variance is
// Bivariant (i.e. the declaration was Undefined).
func seedParams(c *classmodel.ClassDef) (params TParamArray, containsBivariant bool) {
	params = make(TParamArray, len(c.Params))
	for i, tp := range c.Params {
		v, undefined := preToPost(tp.Declared)
		if undefined {
			containsBivariant = true
		}
		params[i] = TParam{Name: tp.Name, V: v, Inj: v != Bivariant}
	}
	return params, containsBivariant
}
