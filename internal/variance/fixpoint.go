package variance

import (
	"github.com/lumen-lang/lumen/internal/classmodel"
	"github.com/lumen-lang/lumen/internal/typeir"
)

// locateClass finds the ClassDef a qualified name refers to, searching
// root's own ancestors first (the common case: a base class almost always
// appears there), then root itself, then falling back to a cross-module
// lookup gated by export visibility. ok is false when the name is
// unreachable — hidden behind another module's export boundary, or the
// resolver has nothing registered for it — meaning this entry should
// simply be skipped for the current iteration rather than treated as an
// error.
func locateClass(name classmodel.QualifiedName, root *classmodel.ClassDef, resolver Resolver) (*classmodel.ClassDef, bool) {
	for _, ancestor := range root.Ancestors() {
		if def := ancestor.ClassObject(); def.QName() == name {
			return def, true
		}
	}

	if root.QName() == name {
		return root, true
	}

	if name.Module != root.QName().Module && !resolver.ExportVisible(name.Module, name.ID) {
		return nil, false
	}

	return resolver.LookupClassByQualifiedName(name)
}

// loopFn performs the discovery DFS: it seeds env for every class reachable
// from c through base types and field types, without recording any
// observations (its on_var is a no-op — discovery exists solely to populate
// env's keys before the fixpoint needs them).
func loopFn(c *classmodel.ClassDef, env *VarianceEnv, root *classmodel.ClassDef, resolver Resolver) TParamArray {
	name := c.QName()
	if params, ok := env.Get(name); ok {
		return params
	}

	params, _ := seedParams(c)
	env.Set(name, params)

	noopVar := func(string, Variance, bool) {}
	onEdge := func(cid typeir.ClassID) TParamArray {
		def, ok := locateClass(cid, root, resolver)
		if !ok {
			return TParamArray{}
		}
		return loopFn(def, env, root, resolver)
	}

	WalkClass(c, onEdge, noopVar)
	return params
}

// runFixpoint iterates the walker over every class in env until no entry
// changes. Each pass is monotone non-decreasing on every component of every
// TParamArray and the lattice has height 2, so this terminates in
// O(|classes| x |params| x 2) steps.
func runFixpoint(root *classmodel.ClassDef, env *VarianceEnv, resolver Resolver) *VarianceEnv {
	next := NewVarianceEnv()
	changed := false

	for _, name := range env.Names() {
		params, _ := env.Get(name)
		paramsPrime := params.Clone()

		def, ok := locateClass(name, root, resolver)
		if !ok {
			// Recoverable: unreachable from this module, leave as-is.
			next.Set(name, paramsPrime)
			continue
		}

		onVar := func(pname string, v Variance, inj bool) {
			if idx := paramsPrime.Find(pname); idx >= 0 {
				paramsPrime[idx].V = Union(paramsPrime[idx].V, v)
				paramsPrime[idx].Inj = paramsPrime[idx].Inj || inj
			}
		}
		onEdge := func(cid typeir.ClassID) TParamArray {
			if p, ok := env.Get(cid); ok {
				return p
			}
			return TParamArray{}
		}

		WalkClass(def, onEdge, onVar)

		if !params.Equal(paramsPrime) {
			changed = true
		}
		next.Set(name, paramsPrime)
	}

	if changed {
		return runFixpoint(root, next, resolver)
	}
	return next
}
