package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/meshsvg/render"
	"gonum.org/v1/gonum/spatial/r3"
)

// tetrahedron returns a regular-ish tetrahedron with outward facing triangles.
func tetrahedron() []render.Triangle3 {
	var (
		a = r3.Vec{X: 1, Y: 1, Z: 1}
		b = r3.Vec{X: -1, Y: -1, Z: 1}
		c = r3.Vec{X: -1, Y: 1, Z: -1}
		d = r3.Vec{X: 1, Y: -1, Z: -1}
	)
	return []render.Triangle3{
		{V: [3]r3.Vec{a, b, d}},
		{V: [3]r3.Vec{a, c, b}},
		{V: [3]r3.Vec{a, d, c}},
		{V: [3]r3.Vec{b, c, d}},
	}
}

func TestSTLCreateWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetra.stl")
	model := tetrahedron()
	err := render.CreateSTL(path, render.NewSliceRenderer(model))
	if err != nil {
		t.Fatal(err)
	}
	bfile, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = render.WriteSTL(&b, model)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatal("WriteSTL and CreateSTL output length mismatch")
	}
	if b.String() != string(bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
	loaded, err := render.LoadSTL(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != len(model) {
		t.Fatalf("got %d triangles. want %d", len(loaded), len(model))
	}
	for i := range model {
		if loaded[i] != model[i] {
			t.Errorf("%dth triangle mismatch. got %v. want %v", i, loaded[i], model[i])
		}
	}
}

func TestCreateSTLEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.stl")
	err := render.CreateSTL(path, render.NewSliceRenderer(nil))
	if err == nil {
		t.Fatal("expected error creating STL from empty renderer")
	}
}

func TestLoadSTLMissing(t *testing.T) {
	_, err := render.LoadSTL(filepath.Join(t.TempDir(), "missing.stl"))
	if err == nil {
		t.Fatal("expected error loading missing file")
	}
}
