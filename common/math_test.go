package common

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func matricesClose(a, b []float32) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > epsilon {
			return false
		}
	}
	return true
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}
	Identity(m)

	want := IdentityMatrix()
	if !matricesClose(m, want[:]) {
		t.Errorf("Identity() = %v, want identity matrix", m)
	}
}

func TestMul4Identity(t *testing.T) {
	a := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	id := IdentityMatrix()
	out := make([]float32, 16)

	Mul4(out, a, id[:])
	if !matricesClose(out, a) {
		t.Errorf("Mul4(a, I) = %v, want %v", out, a)
	}

	Mul4(out, id[:], a)
	if !matricesClose(out, a) {
		t.Errorf("Mul4(I, a) = %v, want %v", out, a)
	}
}

func TestMul4Aliasing(t *testing.T) {
	a := make([]float32, 16)
	Translation(a, 1, 2, 3)
	b := make([]float32, 16)
	Translation(b, 4, 5, 6)

	// out aliases a
	Mul4(a, a, b)

	x, y, z := TransformPoint(a, 0, 0, 0)
	if math.Abs(float64(x-5)) > epsilon || math.Abs(float64(y-7)) > epsilon || math.Abs(float64(z-9)) > epsilon {
		t.Errorf("aliased Mul4 transformed origin to (%v, %v, %v), want (5, 7, 9)", x, y, z)
	}
}

func TestTranslationComposition(t *testing.T) {
	parent := make([]float32, 16)
	Translation(parent, 10, 0, 0)
	child := make([]float32, 16)
	Translation(child, 0, 5, 0)

	world := make([]float32, 16)
	Mul4(world, parent, child)

	x, y, z := TransformPoint(world, 0, 0, 0)
	if math.Abs(float64(x-10)) > epsilon || math.Abs(float64(y-5)) > epsilon || math.Abs(float64(z)) > epsilon {
		t.Errorf("composed translation moved origin to (%v, %v, %v), want (10, 5, 0)", x, y, z)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	m := make([]float32, 16)
	Perspective(m, float32(math.Pi/3), 16.0/9.0, 0.1, 100.0)

	// A point at the near plane should map to z = 0 after perspective divide.
	nx, ny, nz := projectedZ(m, 0, 0, -0.1)
	_ = nx
	_ = ny
	if math.Abs(float64(nz)) > epsilon {
		t.Errorf("near plane projects to z = %v, want 0", nz)
	}

	// A point at the far plane should map to z = 1.
	_, _, fz := projectedZ(m, 0, 0, -100.0)
	if math.Abs(float64(fz-1)) > 1e-4 {
		t.Errorf("far plane projects to z = %v, want 1", fz)
	}
}

func projectedZ(m []float32, x, y, z float32) (float32, float32, float32) {
	cx := m[0]*x + m[4]*y + m[8]*z + m[12]
	cy := m[1]*x + m[5]*y + m[9]*z + m[13]
	cz := m[2]*x + m[6]*y + m[10]*z + m[14]
	cw := m[3]*x + m[7]*y + m[11]*z + m[15]
	return cx / cw, cy / cw, cz / cw
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	view := make([]float32, 16)
	LookAt(view, 0, 0, 5, 0, 0, 0, 0, 1, 0)

	x, y, z := TransformPoint(view, 0, 0, 5)
	if math.Abs(float64(x)) > epsilon || math.Abs(float64(y)) > epsilon || math.Abs(float64(z)) > epsilon {
		t.Errorf("LookAt maps eye to (%v, %v, %v), want origin", x, y, z)
	}

	// The target should end up on the negative z axis in view space.
	_, _, tz := TransformPoint(view, 0, 0, 0)
	if tz >= 0 {
		t.Errorf("LookAt maps target to z = %v, want negative", tz)
	}
}

func TestBuildModelMatrixTranslationOnly(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 1, 2, 3, 0, 0, 0, 1, 1, 1)

	x, y, z := TransformPoint(m, 0, 0, 0)
	if math.Abs(float64(x-1)) > epsilon || math.Abs(float64(y-2)) > epsilon || math.Abs(float64(z-3)) > epsilon {
		t.Errorf("model matrix moved origin to (%v, %v, %v), want (1, 2, 3)", x, y, z)
	}
}

func TestBuildModelMatrixScale(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 0, 0, 0, 0, 0, 0, 2, 3, 4)

	x, y, z := TransformPoint(m, 1, 1, 1)
	if math.Abs(float64(x-2)) > epsilon || math.Abs(float64(y-3)) > epsilon || math.Abs(float64(z-4)) > epsilon {
		t.Errorf("scaled point = (%v, %v, %v), want (2, 3, 4)", x, y, z)
	}
}

func TestInvert4(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 1, 2, 3, 0.5, 0.25, 0.75, 1, 2, 0.5)

	inv := make([]float32, 16)
	if !Invert4(inv, m) {
		t.Fatal("Invert4 reported singular for an invertible matrix")
	}

	out := make([]float32, 16)
	Mul4(out, m, inv)
	want := IdentityMatrix()
	if !matricesClose(out, want[:]) {
		t.Errorf("m * inv(m) = %v, want identity", out)
	}
}

func TestInvert4Singular(t *testing.T) {
	m := make([]float32, 16) // all zeros
	out := make([]float32, 16)
	if Invert4(out, m) {
		t.Error("Invert4 inverted a singular matrix")
	}
}

func TestSliceToBytes(t *testing.T) {
	verts := []Vertex{
		NewVertex(1, 2, 3, NewColor(1, 0, 0, 1)),
		NewVertex(4, 5, 6, NewColor(0, 1, 0, 1)),
	}
	b := SliceToBytes(verts)
	wantLen := 2 * 7 * 4 // 2 vertices, 7 float32 each
	if len(b) != wantLen {
		t.Errorf("SliceToBytes length = %d, want %d", len(b), wantLen)
	}

	if SliceToBytes([]Vertex(nil)) != nil {
		t.Error("SliceToBytes(nil) should return nil")
	}
}

func TestStructToBytes(t *testing.T) {
	u := Uniforms{ViewProjectionMatrix: IdentityMatrix(), ModelMatrix: IdentityMatrix()}
	b := StructToBytes(&u)
	if len(b) != 128 {
		t.Errorf("StructToBytes(Uniforms) length = %d, want 128", len(b))
	}
}
