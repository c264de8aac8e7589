package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform represents a 4x4 homogeneous transformation stored in row major
// order. Unlike a spatial transform used to move geometry around it is also used
// for projections, so elements are stored as is to keep ortho projections of
// integer coordinates exact.
type Transform struct {
	x00, x01, x02, x03 float64
	x10, x11, x12, x13 float64
	x20, x21, x22, x23 float64
	x30, x31, x32, x33 float64
}

// Identity returns the identity Transform.
func Identity() Transform {
	return Transform{x00: 1, x11: 1, x22: 1, x33: 1}
}

// NewTransform returns a new Transform type and populates its elements
// with values passed in row-major form. If val is nil then NewTransform
// returns a Transform filled with zeros.
func NewTransform(a []float64) Transform {
	if a == nil {
		return Transform{}
	}
	if len(a) != 16 {
		panic("Transform is initialized with 16 values")
	}
	return Transform{
		x00: a[0], x01: a[1], x02: a[2], x03: a[3],
		x10: a[4], x11: a[5], x12: a[6], x13: a[7],
		x20: a[8], x21: a[9], x22: a[10], x23: a[11],
		x30: a[12], x31: a[13], x32: a[14], x33: a[15],
	}
}

// Transform applies the Transform to the argument point, performing
// the homogeneous divide, and returns the result.
func (t Transform) Transform(v r3.Vec) r3.Vec {
	w := 1 / (t.x30*v.X + t.x31*v.Y + t.x32*v.Z + t.x33)
	return r3.Vec{
		X: (t.x00*v.X + t.x01*v.Y + t.x02*v.Z + t.x03) * w,
		Y: (t.x10*v.X + t.x11*v.Y + t.x12*v.Z + t.x13) * w,
		Z: (t.x20*v.X + t.x21*v.Y + t.x22*v.Z + t.x23) * w,
	}
}

// Translate adds Vec to the positional Transform.
func (t Transform) Translate(v r3.Vec) Transform {
	return Transform{
		x00: 1, x03: v.X,
		x11: 1, x13: v.Y,
		x22: 1, x23: v.Z,
		x33: 1,
	}.Mul(t)
}

// Scale returns the transform with scaling added around
// the argument origin.
func (t Transform) Scale(origin, factor r3.Vec) Transform {
	if origin == (r3.Vec{}) {
		return t.scale(factor)
	}
	t = t.Translate(r3.Scale(-1, origin))
	t = t.scale(factor)
	return t.Translate(origin)
}

func (t Transform) scale(factor r3.Vec) Transform {
	return Transform{x00: factor.X, x11: factor.Y, x22: factor.Z, x33: 1}.Mul(t)
}

// Mul multiplies the Transforms t and b and returns the result t*b.
// Applying the result is equivalent to applying b and then t.
func (t Transform) Mul(b Transform) Transform {
	var m Transform
	m.x00 = t.x00*b.x00 + t.x01*b.x10 + t.x02*b.x20 + t.x03*b.x30
	m.x10 = t.x10*b.x00 + t.x11*b.x10 + t.x12*b.x20 + t.x13*b.x30
	m.x20 = t.x20*b.x00 + t.x21*b.x10 + t.x22*b.x20 + t.x23*b.x30
	m.x30 = t.x30*b.x00 + t.x31*b.x10 + t.x32*b.x20 + t.x33*b.x30
	m.x01 = t.x00*b.x01 + t.x01*b.x11 + t.x02*b.x21 + t.x03*b.x31
	m.x11 = t.x10*b.x01 + t.x11*b.x11 + t.x12*b.x21 + t.x13*b.x31
	m.x21 = t.x20*b.x01 + t.x21*b.x11 + t.x22*b.x21 + t.x23*b.x31
	m.x31 = t.x30*b.x01 + t.x31*b.x11 + t.x32*b.x21 + t.x33*b.x31
	m.x02 = t.x00*b.x02 + t.x01*b.x12 + t.x02*b.x22 + t.x03*b.x32
	m.x12 = t.x10*b.x02 + t.x11*b.x12 + t.x12*b.x22 + t.x13*b.x32
	m.x22 = t.x20*b.x02 + t.x21*b.x12 + t.x22*b.x22 + t.x23*b.x32
	m.x32 = t.x30*b.x02 + t.x31*b.x12 + t.x32*b.x22 + t.x33*b.x32
	m.x03 = t.x00*b.x03 + t.x01*b.x13 + t.x02*b.x23 + t.x03*b.x33
	m.x13 = t.x10*b.x03 + t.x11*b.x13 + t.x12*b.x23 + t.x13*b.x33
	m.x23 = t.x20*b.x03 + t.x21*b.x13 + t.x22*b.x23 + t.x23*b.x33
	m.x33 = t.x30*b.x03 + t.x31*b.x13 + t.x32*b.x23 + t.x33*b.x33
	return m
}

// EqualWithin tests the equality of the Transforms to within a tolerance.
func (t Transform) EqualWithin(b Transform, tolerance float64) bool {
	a, c := t.SliceCopy(), b.SliceCopy()
	for i := range a {
		if math.Abs(a[i]-c[i]) > tolerance {
			return false
		}
	}
	return true
}

// SliceCopy returns a copy of the Transform's data
// in row major storage format. It returns 16 elements.
func (t Transform) SliceCopy() []float64 {
	return []float64{
		t.x00, t.x01, t.x02, t.x03,
		t.x10, t.x11, t.x12, t.x13,
		t.x20, t.x21, t.x22, t.x23,
		t.x30, t.x31, t.x32, t.x33,
	}
}

// Perspective returns an OpenGL style perspective projection.
// fovy is the vertical field of view in radians.
func Perspective(fovy, aspect, near, far float64) Transform {
	f := 1 / math.Tan(fovy/2)
	nf := 1 / (near - far)
	return Transform{
		x00: f / aspect,
		x11: f,
		x22: (far + near) * nf, x23: 2 * far * near * nf,
		x32: -1,
	}
}

// Frustum returns the perspective projection of the view volume
// bounded by the argument clipping planes.
func Frustum(l, r, b, t, n, f float64) Transform {
	n2 := 2 * n
	return Transform{
		x00: n2 / (r - l), x02: (r + l) / (r - l),
		x11: n2 / (t - b), x12: (t + b) / (t - b),
		x22: (-f - n) / (f - n), x23: -n2 * f / (f - n),
		x32: -1,
	}
}

// Orthographic returns an orthographic projection of the box bounded by the
// argument clipping planes.
func Orthographic(l, r, b, t, n, f float64) Transform {
	return Transform{
		x00: 2 / (r - l), x03: -(r + l) / (r - l),
		x11: 2 / (t - b), x13: -(t + b) / (t - b),
		x22: -2 / (f - n), x23: -(f + n) / (f - n),
		x33: 1,
	}
}

// Ortho2D returns a 2D orthographic projection. Equivalent to
// Orthographic with near and far planes at -1 and 1.
func Ortho2D(l, r, b, t float64) Transform {
	return Transform{
		x00: 2 / (r - l), x03: -(r + l) / (r - l),
		x11: 2 / (t - b), x13: -(t + b) / (t - b),
		x22: -1,
		x33: 1,
	}
}

// LookAt returns a view Transform of a camera located at eye looking
// at center with the up direction pointing up.
func LookAt(eye, center, up r3.Vec) Transform {
	z := r3.Unit(r3.Sub(eye, center))
	x := r3.Unit(r3.Cross(up, z))
	y := r3.Cross(z, x)
	return Transform{
		x00: x.X, x01: x.Y, x02: x.Z, x03: -r3.Dot(x, eye),
		x10: y.X, x11: y.Y, x12: y.Z, x13: -r3.Dot(y, eye),
		x20: z.X, x21: z.Y, x22: z.Z, x23: -r3.Dot(z, eye),
		x33: 1,
	}
}

// Project maps p through viewProj into window coordinates of the viewport
// with the argument origin and size. The Z component is depth in [0,1] for
// points inside the view volume.
func Project(p r3.Vec, viewProj Transform, origin, size r2.Vec) r3.Vec {
	v := viewProj.Transform(p)
	return r3.Vec{
		X: (v.X*0.5+0.5)*size.X + origin.X,
		Y: (v.Y*0.5+0.5)*size.Y + origin.Y,
		Z: v.Z*0.5 + 0.5,
	}
}

// Normal returns the cross product based normal of the triangle (a,b,c).
// It is not normalized.
func Normal(a, b, c r3.Vec) r3.Vec {
	return r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
}
