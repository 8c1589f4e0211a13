package variance

import (
	"github.com/lumen-lang/lumen/internal/classmodel"
	"github.com/lumen-lang/lumen/internal/typeir"
)

// testModule is the module qualified names are minted under for every
// fixture class in this package's tests, unless a test needs to exercise
// cross-module resolution explicitly.
const testModule = "test"

func qn(id string) classmodel.QualifiedName { return typeir.ClassID{Module: testModule, ID: id} }

func quant(name string) *typeir.Type { return typeir.NewQuantified(name) }

// noneType stands in for a nullary return/value type with no quantified
// parameters of its own; it is never a Quantified node, so it contributes no
// observations.
func noneType() *typeir.Type { return typeir.NewClassType(typeir.ClassID{Module: "builtins", ID: "None"}) }

// method builds a Field representing a function-typed attribute: a method
// taking params (excluding the implicit self) and returning ret.
func method(params []*typeir.Type, ret *typeir.Type) classmodel.Field {
	sig := typeir.NewCallable(typeir.CallableParams{Kind: typeir.ParamsTyped, Typed: params}, ret)
	return classmodel.Field{Type: typeir.NewFunction(sig)}
}

func attr(t *typeir.Type) classmodel.Field                  { return classmodel.Field{Type: t} }
func readOnlyAttr(t *typeir.Type) classmodel.Field          { return classmodel.Field{Type: t, ReadOnly: true} }
func finalAttr(t *typeir.Type) classmodel.Field             { return classmodel.Field{Type: t, IsFinal: true} }
func descriptorAttr(getter, setter *typeir.Type) classmodel.Field {
	return classmodel.Field{Getter: getter, Setter: setter}
}

func undefinedParam(name string) classmodel.TypeParam {
	return classmodel.TypeParam{Name: name, Declared: classmodel.Undefined}
}

func declaredParam(name string, v classmodel.PreVariance) classmodel.TypeParam {
	return classmodel.TypeParam{Name: name, Declared: v}
}

type classBuilder struct {
	def *classmodel.ClassDef
}

func newClass(id string, params ...classmodel.TypeParam) *classBuilder {
	return &classBuilder{def: &classmodel.ClassDef{
		Name:     qn(id),
		Params:   params,
		FieldSet: map[string]classmodel.Field{},
	}}
}

func (b *classBuilder) bases(ts ...*typeir.Type) *classBuilder {
	b.def.BaseTypes = append(b.def.BaseTypes, ts...)
	return b
}

func (b *classBuilder) extends(ancestors ...*classmodel.ClassDef) *classBuilder {
	for _, a := range ancestors {
		b.def.AncestorList = append(b.def.AncestorList, classmodel.Ancestor{Def: a})
		// Transitively inherit ancestors, matching MRO flattening.
		b.def.AncestorList = append(b.def.AncestorList, a.Ancestors()...)
	}
	return b
}

func (b *classBuilder) field(name string, f classmodel.Field) *classBuilder {
	b.def.FieldSet[name] = f
	return b
}

func (b *classBuilder) build() *classmodel.ClassDef { return b.def }

// fakeResolver is a minimal in-memory Resolver for tests that need
// cross-module lookups (most fixtures link classes entirely through
// ancestors and never need it).
type fakeResolver struct {
	classes map[classmodel.QualifiedName]*classmodel.ClassDef
	hidden  map[classmodel.QualifiedName]bool
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		classes: map[classmodel.QualifiedName]*classmodel.ClassDef{},
		hidden:  map[classmodel.QualifiedName]bool{},
	}
}

func (r *fakeResolver) register(c *classmodel.ClassDef) *fakeResolver {
	r.classes[c.QName()] = c
	return r
}

func (r *fakeResolver) hide(name classmodel.QualifiedName) *fakeResolver {
	r.hidden[name] = true
	return r
}

func (r *fakeResolver) LookupClassByQualifiedName(name classmodel.QualifiedName) (*classmodel.ClassDef, bool) {
	c, ok := r.classes[name]
	return c, ok
}

func (r *fakeResolver) ExportVisible(module, id string) bool {
	return !r.hidden[typeir.ClassID{Module: module, ID: id}]
}
