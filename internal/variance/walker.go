package variance

import (
	"github.com/lumen-lang/lumen/internal/classmodel"
	"github.com/lumen-lang/lumen/internal/typeir"
)

// OnEdge resolves the walker's current belief about a referenced class's
// parameter array. During discovery (loopFn) it may seed and walk a class it
// has not seen yet; cycles are still broken because every class is seeded
// into the environment before it is walked, so reaching a class already in
// the environment returns its existing entry. During the fixpoint
// (runFixpoint) it only reads the environment.
type OnEdge func(class typeir.ClassID) TParamArray

// OnVar reports a single observed use of a quantified parameter name at the
// given polarity and injectivity.
type OnVar func(name string, v Variance, inj bool)

// WalkClass is the entry point of the polarity walker: it visits c's direct
// bases covariantly, then each declared field at the polarity the attribute
// classifier assigns it.
func WalkClass(c *classmodel.ClassDef, onEdge OnEdge, onVar OnVar) {
	for _, base := range c.Bases() {
		walkType(Covariant, true, base, onEdge, onVar)
	}

	for name, field := range c.Fields() {
		if name == "__init__" {
			continue // constructor parameters don't constrain already-built instances
		}
		walkField(name, field, onEdge, onVar)
	}
}

// walkField applies the attribute classifier to decide the polarity a
// single field is walked at.
func walkField(name string, field classmodel.Field, onEdge OnEdge, onVar OnVar) {
	t, readOnly, getter, setter, ok := field.ForVarianceInference()
	if !ok {
		return
	}

	if getter != nil || setter != nil {
		if getter != nil {
			walkType(Covariant, true, getter, onEdge, onVar)
		}
		if setter != nil {
			walkType(Contravariant, true, setter, onEdge, onVar)
		}
		return
	}

	walkType(FieldPolarity(name, t, readOnly, field.Final()), true, t, onEdge, onVar)
}

// walkType is the recursive case analysis over the type IR. Node kinds not
// explicitly handled are a deliberate, silent no-op: intersections,
// forall-quantified function types, param-spec values, type guards/is,
// super instances, args/kwargs, and bare unpack wrappers carry no
// parameter-use information the walker can act on.
func walkType(p Variance, inj bool, t *typeir.Type, onEdge OnEdge, onVar OnVar) {
	if t == nil {
		return
	}

	switch t.Kind {
	case typeir.KindMeta:
		walkType(p, inj, t.Data.(*typeir.MetaData).Of, onEdge, onVar)

	case typeir.KindFunction:
		walkType(p, inj, t.Data.(*typeir.FunctionData).Signature, onEdge, onVar)

	case typeir.KindClassType:
		d := t.Data.(*typeir.ClassTypeData)
		params := onEdge(d.Class) // a class with zero parameters yields an empty array: no-op below

		for i, arg := range d.Args {
			if i >= len(params) {
				break
			}
			param := params[i]
			walkType(Compose(p, param.V), param.Inj, arg, onEdge, onVar)
		}

	case typeir.KindQuantified:
		onVar(t.Data.(*typeir.QuantifiedData).Name, p, inj)

	case typeir.KindUnion:
		for _, alt := range t.Data.(*typeir.UnionData).Alternatives {
			walkType(p, inj, alt, onEdge, onVar)
		}

	case typeir.KindOverload:
		for _, sig := range t.Data.(*typeir.OverloadData).Signatures {
			walkType(p, inj, sig, onEdge, onVar)
		}

	case typeir.KindCallable:
		d := t.Data.(*typeir.CallableData)
		walkType(p, inj, d.Ret, onEdge, onVar) // return type is covariant

		switch d.Params.Kind {
		case typeir.ParamsTyped:
			for _, pt := range d.Params.Typed {
				walkType(Inv(p), inj, pt, onEdge, onVar) // parameters are contravariant
			}
		case typeir.ParamsUnknown:
			// "..." parameters: no observations possible.
		case typeir.ParamsSpec:
			for _, pt := range d.Params.SpecPrefix {
				walkType(Inv(p), inj, pt, onEdge, onVar)
			}
			walkType(Inv(p), inj, d.Params.SpecVar, onEdge, onVar)
		}

	case typeir.KindTuple:
		shape := t.Data.(typeir.TupleShape)
		switch shape.Kind {
		case typeir.TupleConcrete:
			for _, el := range shape.Concrete {
				walkType(p, inj, el, onEdge, onVar)
			}
		case typeir.TupleUnbounded:
			walkType(p, inj, shape.Unbounded, onEdge, onVar)
		case typeir.TupleUnpacked:
			for _, el := range shape.Before {
				walkType(p, inj, el, onEdge, onVar)
			}
			walkType(p, inj, shape.Middle, onEdge, onVar)
			for _, el := range shape.After {
				walkType(p, inj, el, onEdge, onVar)
			}
		}

	default:
		// KindIntersection, KindForall, KindParamSpecValue, KindTypeGuard,
		// KindTypeIs, KindSuperInstance, KindArgsKwargs, KindUnpack, and any
		// future node kind: conservative no-op.
	}
}
