// Package mesh builds and represents triangulated polyhedral surfaces.
//
// A Mesh is an immutable list of vertices plus a list of faces referencing
// them by index, wound counter-clockwise when viewed from outside the
// solid. Meshes are produced by the grid, path and height-field builders
// and consumed either by the OpenSCAD fragment renderer or the STL writer.
package mesh

import (
	"fmt"
	"strings"

	"github.com/philipparndt/goscad/pkg/geometry"
)

// Mesh is a polyhedral surface: ordered vertices and faces of vertex
// indices. Vertex order is identity; faces reference vertices by index.
// Immutable after construction.
type Mesh struct {
	vertices []geometry.Vector3
	faces    [][]int
}

// New creates a mesh from caller-supplied vertices and faces.
// Every face must have at least 3 distinct indices, all < len(vertices);
// otherwise the mesh is rejected with ErrInvalidTopology.
func New(vertices []geometry.Vector3, faces [][]int) (*Mesh, error) {
	for fi, face := range faces {
		if len(face) < 3 {
			return nil, fmt.Errorf("%w: face %d has %d vertices", ErrInvalidTopology, fi, len(face))
		}
		distinct := make(map[int]struct{}, len(face))
		for _, vi := range face {
			if vi < 0 || vi >= len(vertices) {
				return nil, fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidTopology, fi, vi, len(vertices))
			}
			distinct[vi] = struct{}{}
		}
		if len(distinct) < 3 {
			return nil, fmt.Errorf("%w: face %d has fewer than 3 distinct vertices", ErrInvalidTopology, fi)
		}
	}

	m := &Mesh{
		vertices: make([]geometry.Vector3, len(vertices)),
		faces:    make([][]int, len(faces)),
	}
	copy(m.vertices, vertices)
	for i, face := range faces {
		m.faces[i] = make([]int, len(face))
		copy(m.faces[i], face)
	}
	return m, nil
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// FaceCount returns the number of faces
func (m *Mesh) FaceCount() int {
	return len(m.faces)
}

// Vertex returns the vertex at the given index
func (m *Mesh) Vertex(i int) geometry.Vector3 {
	return m.vertices[i]
}

// Vertices returns a copy of the vertex list
func (m *Mesh) Vertices() []geometry.Vector3 {
	out := make([]geometry.Vector3, len(m.vertices))
	copy(out, m.vertices)
	return out
}

// Faces returns a copy of the face list
func (m *Mesh) Faces() [][]int {
	out := make([][]int, len(m.faces))
	for i, face := range m.faces {
		out[i] = make([]int, len(face))
		copy(out[i], face)
	}
	return out
}

// Triangles decomposes every face into triangles by fan triangulation
// from its first vertex: [v0,v1,v2], [v0,v2,v3], ... The order is
// deterministic and matches the exported STL exactly. Each triangle
// carries the normal derived from its winding; degenerate triangles
// get a zero normal.
func (m *Mesh) Triangles() []geometry.Triangle {
	var triangles []geometry.Triangle
	for _, face := range m.faces {
		for i := 1; i < len(face)-1; i++ {
			tri := geometry.Triangle{
				V1: m.vertices[face[0]],
				V2: m.vertices[face[i]],
				V3: m.vertices[face[i+1]],
			}
			tri.Normal = tri.CalculateNormal()
			triangles = append(triangles, tri)
		}
	}
	return triangles
}

// BoundingBox returns the axis-aligned bounding box of all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.vertices {
		bbox.Extend(v)
	}
	return bbox
}

// SCAD renders the mesh as an OpenSCAD polyhedron fragment:
//
//	polyhedron(points=[...], faces=[...]);
//
// Points appear in construction order, faces in stored winding order.
func (m *Mesh) SCAD() string {
	var sb strings.Builder
	sb.WriteString("polyhedron(points=[")
	for i, v := range m.vertices {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, "[%s,%s,%s]", formatCoord(v.X), formatCoord(v.Y), formatCoord(v.Z))
	}
	sb.WriteString("], faces=[")
	for i, face := range m.faces {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString("[")
		for j, vi := range face {
			if j > 0 {
				sb.WriteString(",")
			}
			fmt.Fprintf(&sb, "%d", vi)
		}
		sb.WriteString("]")
	}
	sb.WriteString("]);")
	return sb.String()
}

// formatCoord formats a coordinate with the fixed precision used
// throughout the emitted OpenSCAD text
func formatCoord(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.6f", f), "0"), ".")
}
