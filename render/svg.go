package render

import (
	"errors"
	"io"

	"github.com/soypat/meshsvg"
	"gonum.org/v1/gonum/spatial/r3"
)

// SVGParms configures how WriteSVG draws a mesh. The zero value draws
// triangles shaded by the writer's light with no outlines.
type SVGParms struct {
	// Fill is the color of all triangles. If nil triangles are shaded
	// according to the angle between their normal and the writer's light.
	Fill *r3.Vec
	// Edges draws the edges of visible triangles with EdgeColor.
	Edges     bool
	EdgeColor r3.Vec
	// Vertices draws the corners of visible triangles with VertexColor.
	Vertices    bool
	VertexColor r3.Vec
}

// WriteSVG submits all triangles of r to w and returns the number of triangles read.
// Edges and vertices are submitted after the triangle they belong to so
// they are drawn over fills of equal depth. Edges and vertices shared by
// several triangles are submitted once.
func WriteSVG(w *meshsvg.Writer, r Renderer, parms SVGParms) (int, error) {
	if w == nil {
		return 0, ErrMsg("nil Writer")
	}
	var (
		err      error
		nt       int
		total    int
		buf      = make([]Triangle3, trianglesInBuffer)
		edges    = make(map[[2]r3.Vec]struct{})
		vertices = make(map[r3.Vec]struct{})
	)
	for err == nil {
		nt, err = r.ReadTriangles(buf)
		for _, t := range buf[:nt] {
			before := w.Len()
			if parms.Fill != nil {
				w.WriteTriangle(t.V[0], t.V[1], t.V[2], *parms.Fill)
			} else {
				w.WriteShadedTriangle(t.V[0], t.V[1], t.V[2])
			}
			if w.Len() == before {
				// Culled or degenerate.
				continue
			}
			if parms.Edges {
				for i := range t.V {
					a, b := t.V[i], t.V[(i+1)%3]
					key := edgeKey(a, b)
					if _, ok := edges[key]; ok {
						continue
					}
					edges[key] = struct{}{}
					w.WriteLine(a, b, parms.EdgeColor)
				}
			}
			if parms.Vertices {
				for _, v := range t.V {
					if _, ok := vertices[v]; ok {
						continue
					}
					vertices[v] = struct{}{}
					w.WritePoint(v, parms.VertexColor)
				}
			}
		}
		total += nt
	}
	if errors.Is(err, io.EOF) {
		return total, nil
	}
	return total, err
}

// edgeKey returns a key that is the same regardless of edge direction.
func edgeKey(a, b r3.Vec) [2]r3.Vec {
	if a.X < b.X || (a.X == b.X && (a.Y < b.Y || (a.Y == b.Y && a.Z < b.Z))) {
		return [2]r3.Vec{a, b}
	}
	return [2]r3.Vec{b, a}
}
