package main

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/classmodel"
	"github.com/lumen-lang/lumen/internal/position"
	"github.com/lumen-lang/lumen/internal/typeir"
	"github.com/lumen-lang/lumen/internal/variance"
)

func TestBuildResult_ReportsDeclarationSite(t *testing.T) {
	c := &classmodel.ClassDef{
		Name: typeir.ClassID{Module: "demo", ID: "Box"},
		Span: position.Span{
			Start: position.Position{Filename: "demo.lumen", Line: 3, Column: 1, Offset: 20},
			End:   position.Position{Filename: "demo.lumen", Line: 5, Column: 2, Offset: 58},
		},
		Params: []classmodel.TypeParam{{Name: "T"}},
	}
	vm := map[string]variance.Variance{"T": variance.Invariant}

	got := buildResult(c, vm)

	if want := "demo.lumen:3:1-5:2"; got.DeclaredAt != want {
		t.Fatalf("DeclaredAt = %q, want %q", got.DeclaredAt, want)
	}
	if got.Params["T"] != "invariant" {
		t.Fatalf("Params[T] = %q, want invariant", got.Params["T"])
	}
}

func TestBuildResult_OmitsDeclarationSite_WhenSpanZero(t *testing.T) {
	c := &classmodel.ClassDef{
		Name:   typeir.ClassID{Module: "demo", ID: "Box"},
		Params: []classmodel.TypeParam{{Name: "T"}},
	}
	vm := map[string]variance.Variance{"T": variance.Covariant}

	got := buildResult(c, vm)

	if got.DeclaredAt != "" {
		t.Fatalf("DeclaredAt = %q, want empty for a zero-value Span", got.DeclaredAt)
	}
}

func TestDemoRegistry_BoxResolvesWithDeclarationSite(t *testing.T) {
	registry := demoRegistry()

	c, ok := registry.LookupClassByQualifiedName(typeir.ClassID{Module: "demo", ID: "Box"})
	if !ok {
		t.Fatal("expected demo.Box to resolve")
	}
	if !c.Span.IsValid() {
		t.Fatal("expected demo.Box to carry a valid declaration span")
	}

	vm, err := variance.VarianceMap(c, registry)
	if err != nil {
		t.Fatalf("VarianceMap: %v", err)
	}

	out := buildResult(c, vm)
	if out.DeclaredAt == "" {
		t.Fatal("expected buildResult to report Box's declaration site")
	}
}
