package variance

import (
	"github.com/lumen-lang/lumen/internal/classmodel"
	"github.com/lumen-lang/lumen/internal/typeir"
)

// FieldPolarity is the attribute classifier: the polarity at which an
// ordinary (non-descriptor) field's declared type is walked.
//
// Methods are called on instances, so their self-binding treats the
// enclosing class's parameters as a covariant use. Private fields are
// conventionally outside the subtype interface, so treating them covariantly
// avoids spuriously invariant parameters. Read-only and final fields cannot
// be written, so they do not demand invariance. A regular mutable field
// demands invariance because it can be both read and written at its
// declared type.
func FieldPolarity(name string, t *typeir.Type, readOnly, final bool) Variance {
	if t.IsFunctionType() || classmodel.IsPrivateName(name) || readOnly || final {
		return Covariant
	}
	return Invariant
}
