// Package classmodel provides the concrete class, field, and metadata types
// that stand behind the variance engine's opaque collaborator interfaces
// (get_metadata, get_fields, for_variance_inference). It mirrors the host
// resolver's own symbol/visibility vocabulary (SymbolKind, Visibility) so a
// class definition here reads the way the rest of the checker names things.
package classmodel

import (
	"strings"

	"github.com/lumen-lang/lumen/internal/position"
	"github.com/lumen-lang/lumen/internal/typeir"
)

// QualifiedName identifies a class by defining module + identifier. It is
// the same comparable token carried inside typeir.ClassType nodes.
type QualifiedName = typeir.ClassID

// PreVariance is the user-declared variance of a type parameter, before
// inference. Undefined marks a parameter the engine must infer.
type PreVariance int

const (
	Undefined PreVariance = iota
	DeclaredCovariant
	DeclaredContravariant
	DeclaredInvariant
)

func (p PreVariance) String() string {
	switch p {
	case DeclaredCovariant:
		return "covariant"
	case DeclaredContravariant:
		return "contravariant"
	case DeclaredInvariant:
		return "invariant"
	default:
		return "undefined"
	}
}

// TypeParam is one entry in a class's declared parameter list, in
// declaration order.
type TypeParam struct {
	Name     string
	Declared PreVariance
}

// Field is a class member as seen by variance inference: either an ordinary
// attribute (Type set, Getter/Setter nil) or a descriptor/property (Getter
// and/or Setter set). A Field with neither set and Type nil is not
// considered for variance inference at all (e.g. a plain method marker with
// no resolvable type yet).
type Field struct {
	Type     *typeir.Type // surface type of an ordinary attribute
	ReadOnly bool
	IsFinal  bool
	Getter   *typeir.Type // descriptor getter return type, if any
	Setter   *typeir.Type // descriptor setter value type, if any
}

// ForVarianceInference returns the data the walker needs, or ok=false if
// this field carries no type information relevant to variance.
func (f Field) ForVarianceInference() (t *typeir.Type, readOnly bool, getter, setter *typeir.Type, ok bool) {
	if f.Type == nil && f.Getter == nil && f.Setter == nil {
		return nil, false, nil, nil, false
	}
	return f.Type, f.ReadOnly, f.Getter, f.Setter, true
}

// Final reports whether this field is declared final (cannot be reassigned).
func (f Field) Final() bool { return f.IsFinal }

// IsPrivateName reports whether name follows the host language's private
// attribute convention: a single leading underscore, and not a dunder name
// (which ends in a double underscore).
func IsPrivateName(name string) bool {
	return strings.HasPrefix(name, "_") && !strings.HasSuffix(name, "__")
}

// Ancestor is one entry of a class's MRO-ordered ancestor list.
type Ancestor struct {
	Def *ClassDef
}

func (a Ancestor) ClassObject() *ClassDef { return a.Def }

// ClassDef is a concrete nominal generic class definition: a class's
// metadata (name, span, declared parameters, bases) together with the
// field map inference needs to classify each member's polarity.
type ClassDef struct {
	Name   QualifiedName
	Span   position.Span
	Params []TypeParam

	BaseTypes    []*typeir.Type // direct bases, each to be walked covariantly
	AncestorList []Ancestor     // MRO order; does not include Name itself

	FieldSet map[string]Field
}

func (c *ClassDef) QName() QualifiedName { return c.Name }

func (c *ClassDef) Arity() int { return len(c.Params) }

// Bases returns the class's direct base types (for variance's step 1: walk
// each base covariantly).
func (c *ClassDef) Bases() []*typeir.Type { return c.BaseTypes }

// Ancestors returns the class's MRO-ordered ancestors. The fixpoint driver
// checks this list first when locating a referenced class, since a base
// class is almost always an ancestor of the class currently being solved.
func (c *ClassDef) Ancestors() []Ancestor { return c.AncestorList }

// Fields returns the class's declared attribute/method/descriptor map.
func (c *ClassDef) Fields() map[string]Field { return c.FieldSet }
