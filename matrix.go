package meshsvg

import (
	"math"

	"github.com/soypat/meshsvg/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// M44 is a 4x4 row major homogeneous transformation matrix used for camera
// view and projection transforms.
type M44 = d3.Transform

// NewM44 returns a matrix populated with 16 values in row-major order.
func NewM44(rowMajor []float64) M44 {
	return d3.NewTransform(rowMajor)
}

// Identity3d returns a 4x4 identity matrix.
func Identity3d() M44 {
	return d3.Identity()
}

// Translate3d returns a 4x4 translation matrix.
func Translate3d(v r3.Vec) M44 {
	return d3.Identity().Translate(v)
}

// Scale3d returns a 4x4 scaling matrix.
func Scale3d(v r3.Vec) M44 {
	return d3.Identity().Scale(r3.Vec{}, v)
}

// LookAt returns a view matrix of a camera located at eye looking at center.
func LookAt(eye, center, up r3.Vec) M44 {
	return d3.LookAt(eye, center, up)
}

// Rotate3d returns an orthographic 4x4 rotation matrix (right hand rule).
func Rotate3d(axis r3.Vec, angle float64) M44 {
	if axis == (r3.Vec{}) {
		return Identity3d()
	}
	k := r3.Skew(r3.Unit(axis))
	k2 := r3.NewMat(nil)
	k2.Mul(k, k)
	k2.Scale(1-math.Cos(angle), k2)
	k.Scale(math.Sin(angle), k)
	k.Add(k, r3.Eye())
	k.Add(k, k2)
	return m44FromMat(k)
}

// RotateToVec returns the rotation matrix that transforms a onto the same direction as b.
func RotateToVec(a, b r3.Vec) M44 {
	// is either vector == 0?
	if d3.EqualWithin(a, r3.Vec{}, epsilon) || d3.EqualWithin(b, r3.Vec{}, epsilon) {
		return Identity3d()
	}
	a = r3.Unit(a)
	b = r3.Unit(b)
	if d3.EqualWithin(a, b, epsilon) {
		return Identity3d()
	}
	// are the vectors opposite (180 degrees apart)?
	if d3.EqualWithin(r3.Scale(-1, a), b, epsilon) {
		return Scale3d(d3.Elem(-1))
	}
	// See:	https://math.stackexchange.com/questions/180418/calculate-rotation-matrix-to-align-vector-a-to-vector-b-in-3d
	vx := r3.Skew(r3.Cross(a, b))
	k := 1 / (1 + r3.Dot(a, b))
	vx2 := r3.NewMat(nil)
	vx2.Mul(vx, vx)
	vx2.Scale(k, vx2)

	vx.Add(vx, r3.Eye())
	vx.Add(vx, vx2)
	return m44FromMat(vx)
}

func m44FromMat(m *r3.Mat) M44 {
	return NewM44([]float64{
		m.At(0, 0), m.At(0, 1), m.At(0, 2), 0,
		m.At(1, 0), m.At(1, 1), m.At(1, 2), 0,
		m.At(2, 0), m.At(2, 1), m.At(2, 2), 0,
		0, 0, 0, 1,
	})
}
