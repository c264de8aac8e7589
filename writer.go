// Package meshsvg draws 3D points, lines and triangles as 2D SVG documents
// using a camera projection, back-face culling and painter's algorithm
// depth ordering.
package meshsvg

import (
	"io"
	"sort"
	"strconv"

	"github.com/soypat/meshsvg/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Writer projects world space points, lines and triangles onto a canvas
// and serializes them as an SVG document. Primitives are sorted back to front
// before being written (painter's algorithm) so there is no depth buffer.
//
// Colors are r3.Vec values with X, Y and Z holding the red, green and blue
// components in the range [0,1].
//
// A Writer is not safe for concurrent use. Rendering sorts the recorded
// primitives in place.
type Writer struct {
	size     [2]int
	view     M44
	proj     M44
	viewProj M44
	// viewport origin and size in pixels.
	vpOrigin [2]int
	vpSize   [2]int
	lightDir r3.Vec
	cullface bool
	elems    []element
}

// NewWriter returns a Writer for a width by height pixel canvas. Camera
// matrices start out as identity, the viewport covers the whole canvas,
// back-face culling is enabled and the light points along (1,2,3).
func NewWriter(width, height int) *Writer {
	if width < 0 || height < 0 {
		panic("negative canvas dimension")
	}
	return &Writer{
		size:     [2]int{width, height},
		view:     Identity3d(),
		proj:     Identity3d(),
		viewProj: Identity3d(),
		vpSize:   [2]int{width, height},
		lightDir: r3.Unit(r3.Vec{X: 1, Y: 2, Z: 3}),
		cullface: true,
	}
}

// ModelView sets the world to camera transform.
func (w *Writer) ModelView(m M44) {
	w.view = m
	w.viewProj = w.proj.Mul(w.view)
}

// Perspective sets an OpenGL style perspective projection. fovy is the
// vertical field of view in radians.
func (w *Writer) Perspective(fovy, aspect, zNear, zFar float64) {
	w.proj = d3.Perspective(fovy, aspect, zNear, zFar)
	w.viewProj = w.proj.Mul(w.view)
}

// Ortho sets a 2D orthographic projection.
func (w *Writer) Ortho(left, right, bottom, top float64) {
	w.proj = d3.Ortho2D(left, right, bottom, top)
	w.viewProj = w.proj.Mul(w.view)
}

// Viewport sets the canvas rectangle normalized device coordinates map to.
func (w *Writer) Viewport(x, y, width, height int) {
	if width < 0 || height < 0 {
		panic("negative viewport dimension")
	}
	w.vpOrigin = [2]int{x, y}
	w.vpSize = [2]int{width, height}
}

// Cullface enables or disables back-face culling of triangles.
func (w *Writer) Cullface(cull bool) {
	w.cullface = cull
}

// ViewProj returns the projection matrix multiplied by the model view matrix.
func (w *Writer) ViewProj() M44 { return w.viewProj }

// Len returns the amount of primitives recorded.
func (w *Writer) Len() int { return len(w.elems) }

// Reset discards all recorded primitives. Camera state is kept.
func (w *Writer) Reset() {
	w.elems = w.elems[:0]
}

// project maps a world point to canvas coordinates with the y axis pointing down.
func (w *Writer) project(p r3.Vec) r3.Vec {
	origin := r2.Vec{X: float64(w.vpOrigin[0]), Y: float64(w.vpOrigin[1])}
	size := r2.Vec{X: float64(w.vpSize[0]), Y: float64(w.vpSize[1])}
	v := d3.Project(p, w.viewProj, origin, size)
	v.Y = float64(w.size[1]) - v.Y
	return v
}

// NormalToColor returns the gray shade of a surface with unit normal n lit by
// the writer's directional light. The result is between 0.1 and 0.9.
func (w *Writer) NormalToColor(n r3.Vec) r3.Vec {
	d := Clamp(r3.Dot(n, w.lightDir), 0, 1)
	d = 0.1 + 0.8*d
	return d3.Elem(d)
}

// WritePoint records a point drawn as a small circle.
func (w *Writer) WritePoint(p, color r3.Vec) {
	w.elems = append(w.elems, newVertexElem(w.project(p), color))
}

// WriteLine records a line segment. Zero length lines are ignored.
func (w *Writer) WriteLine(p1, p2, color r3.Vec) {
	if p1 == p2 {
		return
	}
	w.elems = append(w.elems, newLineElem(w.project(p1), w.project(p2), color))
}

// WriteTriangle records a filled triangle. Degenerate triangles are ignored,
// as are back facing triangles when culling is enabled. Winding is
// counter-clockwise for front faces as seen by the camera.
func (w *Writer) WriteTriangle(p1, p2, p3, color r3.Vec) {
	if p1 == p2 || p2 == p3 || p1 == p3 {
		return
	}
	pp1 := w.project(p1)
	pp2 := w.project(p2)
	pp3 := w.project(p3)
	// Projected y axis is flipped so front faces have a negative normal.
	if w.cullface && d3.Normal(pp1, pp2, pp3).Z > 0 {
		return
	}
	w.elems = append(w.elems, newTriangleElem(pp1, pp2, pp3, color))
}

// WriteShadedTriangle records a triangle colored according to the angle
// between its world space normal and the writer's light.
func (w *Writer) WriteShadedTriangle(p1, p2, p3 r3.Vec) {
	n := r3.Unit(d3.Normal(p1, p2, p3))
	w.WriteTriangle(p1, p2, p3, w.NormalToColor(n))
}

// String renders the SVG document. Recorded primitives are sorted
// far to near, primitives of equal depth keep the order they were written in.
func (w *Writer) String() string {
	return string(w.appendSVG(nil))
}

// WriteTo renders the SVG document to dst. See String.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	n, err := dst.Write(w.appendSVG(make([]byte, 0, 128*len(w.elems)+256)))
	return int64(n), err
}

func (w *Writer) appendSVG(b []byte) []byte {
	width := strconv.Itoa(w.size[0])
	height := strconv.Itoa(w.size[1])
	b = append(b, `<svg width="`+width+`" height="`+height+`" version="1.1" xmlns="http://www.w3.org/2000/svg">`+"\n"...)
	b = append(b, `<rect width="`+width+`" height="`+height+`" style="fill:white"/>`+"\n"...)
	sort.SliceStable(w.elems, func(i, j int) bool {
		return w.elems[i].depth() > w.elems[j].depth()
	})
	for _, e := range w.elems {
		b = e.appendSVG(b)
	}
	return append(b, "</svg>\n"...)
}
