package meshsvg

import (
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// element is a projected primitive ready to be drawn.
type element interface {
	// depth is the sorting key. Larger is farther from the viewer.
	depth() float64
	appendSVG(b []byte) []byte
}

var (
	_ element = vertexElem{}
	_ element = lineElem{}
	_ element = triangleElem{}
)

type vertexElem struct {
	p     r3.Vec
	color r3.Vec
}

func newVertexElem(p, color r3.Vec) vertexElem {
	return vertexElem{p: p, color: color}
}

func (e vertexElem) depth() float64 { return e.p.Z }

func (e vertexElem) appendSVG(b []byte) []byte {
	b = append(b, `<circle cx="`...)
	b = appendCoord(b, e.p.X)
	b = append(b, `" cy="`...)
	b = appendCoord(b, e.p.Y)
	b = append(b, `" r="3" style="fill: `...)
	b = appendRGB(b, e.color)
	return append(b, "\" />\n"...)
}

type lineElem struct {
	p1, p2 r3.Vec
	color  r3.Vec
	z      float64
}

func newLineElem(p1, p2, color r3.Vec) lineElem {
	return lineElem{p1: p1, p2: p2, color: color, z: (p1.Z + p2.Z) / 2}
}

func (e lineElem) depth() float64 { return e.z }

func (e lineElem) appendSVG(b []byte) []byte {
	b = append(b, `<line x1="`...)
	b = appendCoord(b, e.p1.X)
	b = append(b, `" y1="`...)
	b = appendCoord(b, e.p1.Y)
	b = append(b, `" x2="`...)
	b = appendCoord(b, e.p2.X)
	b = append(b, `" y2="`...)
	b = appendCoord(b, e.p2.Y)
	b = append(b, `" style="stroke: `...)
	b = appendRGB(b, e.color)
	return append(b, ";\" />\n"...)
}

type triangleElem struct {
	p     [3]r3.Vec
	color r3.Vec
	z     float64
}

func newTriangleElem(p1, p2, p3, color r3.Vec) triangleElem {
	return triangleElem{
		p:     [3]r3.Vec{p1, p2, p3},
		color: color,
		z:     (p1.Z + p2.Z + p3.Z) / 3,
	}
}

func (e triangleElem) depth() float64 { return e.z }

func (e triangleElem) appendSVG(b []byte) []byte {
	b = append(b, `<polygon points="`...)
	for _, p := range e.p {
		b = appendCoord(b, p.X)
		b = append(b, ',')
		b = appendCoord(b, p.Y)
		b = append(b, ' ')
	}
	b = append(b, `" style="fill: `...)
	b = appendRGB(b, e.color)
	return append(b, ";\" />\n"...)
}

// appendCoord formats a coordinate with 6 significant digits.
func appendCoord(b []byte, v float64) []byte {
	return strconv.AppendFloat(b, v, 'g', 6, 64)
}

// appendRGB appends an SVG rgb color. Components are clamped to [0,1].
func appendRGB(b []byte, c r3.Vec) []byte {
	b = append(b, "rgb("...)
	b = strconv.AppendUint(b, colorByte(c.X), 10)
	b = append(b, ',')
	b = strconv.AppendUint(b, colorByte(c.Y), 10)
	b = append(b, ',')
	b = strconv.AppendUint(b, colorByte(c.Z), 10)
	return append(b, ')')
}

func colorByte(c float64) uint64 {
	return uint64(255 * Clamp(c, 0, 1))
}
