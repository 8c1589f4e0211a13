package modules

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/classmodel"
	"github.com/lumen-lang/lumen/internal/typeir"
)

func classStub(mod, id string) *classmodel.ClassDef {
	return &classmodel.ClassDef{
		Name:     typeir.ClassID{Module: mod, ID: id},
		FieldSet: map[string]classmodel.Field{},
	}
}

func TestRegistry_LookupExportedClass(t *testing.T) {
	r := NewRegistry()
	m := NewModuleSpec("collections", "1.0.0")
	m.Define(classStub("collections", "Box"))
	r.Register(m)

	c, ok := r.LookupClassByQualifiedName(typeir.ClassID{Module: "collections", ID: "Box"})
	if !ok {
		t.Fatal("expected Box to resolve")
	}
	if c.QName().ID != "Box" {
		t.Errorf("got %q", c.QName().ID)
	}
	if !r.ExportVisible("collections", "Box") {
		t.Error("Box should be export-visible")
	}
}

func TestRegistry_PrivateClassNotExportVisible(t *testing.T) {
	r := NewRegistry()
	m := NewModuleSpec("collections", "1.0.0")
	m.DefinePrivate(classStub("collections", "internalHelper"))
	r.Register(m)

	_, ok := r.LookupClassByQualifiedName(typeir.ClassID{Module: "collections", ID: "internalHelper"})
	if !ok {
		t.Fatal("lookup should still succeed for a private class")
	}
	if r.ExportVisible("collections", "internalHelper") {
		t.Error("private class must not be export-visible")
	}
}

func TestRegistry_UnknownModuleExportsNothing(t *testing.T) {
	r := NewRegistry()
	if r.ExportVisible("nope", "Anything") {
		t.Error("unregistered module should export nothing")
	}
	if _, ok := r.LookupClassByQualifiedName(typeir.ClassID{Module: "nope", ID: "Anything"}); ok {
		t.Error("unregistered module should resolve nothing")
	}
}

func TestRegistry_Reexport(t *testing.T) {
	r := NewRegistry()
	base := NewModuleSpec("collections.abc", "1.0.0")
	base.Define(classStub("collections.abc", "Mapping"))
	r.Register(base)

	facade := NewModuleSpec("collections", "1.0.0")
	facade.Reexport("Mapping")
	r.Register(facade)

	if !r.ExportVisible("collections", "Mapping") {
		t.Error("Mapping should be visible through the facade's re-export")
	}
	// The facade doesn't carry its own copy of the class definition.
	if _, ok := r.LookupClassByQualifiedName(typeir.ClassID{Module: "collections", ID: "Mapping"}); ok {
		t.Error("re-export should not fabricate a class definition under the facade's own module path")
	}
}

func TestRegistry_Satisfies(t *testing.T) {
	r := NewRegistry()
	r.Register(NewModuleSpec("collections", "2.3.1"))

	ok, err := r.Satisfies("collections", ">=2.0.0, <3.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("2.3.1 should satisfy >=2.0.0, <3.0.0")
	}

	ok, err = r.Satisfies("collections", ">=3.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("2.3.1 should not satisfy >=3.0.0")
	}
}

func TestRegistry_SatisfiesUnknownModule(t *testing.T) {
	r := NewRegistry()
	ok, err := r.Satisfies("nope", ">=1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("unregistered module should never satisfy a constraint")
	}
}

func TestRegistry_ReplacesOnReregister(t *testing.T) {
	r := NewRegistry()
	r.Register(NewModuleSpec("collections", "1.0.0"))
	r.Register(NewModuleSpec("collections", "2.0.0"))

	m, ok := r.Module("collections")
	if !ok {
		t.Fatal("expected module to be registered")
	}
	if m.Version.String() != "2.0.0" {
		t.Errorf("got version %s, want 2.0.0", m.Version.String())
	}
}

func TestNewModuleSpec_InvalidVersionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for malformed version string")
		}
	}()
	NewModuleSpec("bad", "not-a-version")
}
