package variance

import (
	"github.com/lumen-lang/lumen/internal/classmodel"
	"github.com/lumen-lang/lumen/internal/errors"
)

// VarianceMap computes the final variance of every declared type parameter
// of c. Classes whose parameters are all explicitly declared take a fast
// path and never touch resolver. Otherwise, it discovers every class
// reachable from c, runs the fixpoint driver to stability, and projects the
// result through c's own declarations (an explicit declaration always wins
// over whatever the fixpoint observed).
//
// The only error this can return is the fatal, structural case of a
// parameter produced by the fixpoint that is absent from c's own
// declaration. Every other failure mode (missing export, non-class
// resolution, unsupported IR node) is recoverable and silently tolerated by
// the fixpoint driver and walker respectively.
func VarianceMap(c *classmodel.ClassDef, resolver Resolver) (map[string]Variance, error) {
	postInitial := make(map[string]Variance, len(c.Params))
	containsBivariant := false

	for _, tp := range c.Params {
		v, undefined := preToPost(tp.Declared)
		if undefined {
			containsBivariant = true
		}
		postInitial[tp.Name] = v
	}

	if !containsBivariant {
		return postInitial, nil
	}

	env := NewVarianceEnv()
	loopFn(c, env, c, resolver)
	env = runFixpoint(c, env, resolver)

	params, ok := env.Get(c.QName())
	if !ok {
		return nil, errors.VarianceProjectionBug(c.QName().String(), "<all>")
	}

	result := make(map[string]Variance, len(params))
	for _, tp := range params {
		initial, known := postInitial[tp.Name]
		if !known {
			return nil, errors.VarianceProjectionBug(c.QName().String(), tp.Name)
		}
		if initial != Bivariant {
			result[tp.Name] = initial
			continue
		}
		if !tp.Inj {
			result[tp.Name] = Bivariant
			continue
		}
		result[tp.Name] = tp.V
	}

	return result, nil
}
