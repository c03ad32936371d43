package analysis

import (
	"github.com/philipparndt/goscad/pkg/mesh"
)

// ManifoldReport summarizes the edge sharing of a mesh's faces.
// A closed manifold has every edge bordered by exactly two faces
// traversing it in opposite directions.
type ManifoldReport struct {
	EdgeCount        int
	BoundaryEdges    int // edges bordered by a single face
	NonManifoldEdges int // edges bordered by >2 faces, or twice in the same direction
}

// Closed reports whether the mesh is a closed manifold
func (r ManifoldReport) Closed() bool {
	return r.BoundaryEdges == 0 && r.NonManifoldEdges == 0
}

type edgeKey struct {
	a, b int
}

// CheckManifold counts each undirected face edge and the directions it
// is traversed in. Builders producing "closed" topology must yield a
// report with Closed() true; explicitly open shapes (uncapped tubes,
// patches) show their rim as boundary edges.
func CheckManifold(m *mesh.Mesh) ManifoldReport {
	forward := make(map[edgeKey]int)
	backward := make(map[edgeKey]int)

	for _, face := range m.Faces() {
		for i := range face {
			a, b := face[i], face[(i+1)%len(face)]
			if a < b {
				forward[edgeKey{a, b}]++
			} else {
				backward[edgeKey{b, a}]++
			}
		}
	}

	edges := make(map[edgeKey]struct{}, len(forward))
	for k := range forward {
		edges[k] = struct{}{}
	}
	for k := range backward {
		edges[k] = struct{}{}
	}

	var report ManifoldReport
	report.EdgeCount = len(edges)
	for k := range edges {
		f, b := forward[k], backward[k]
		switch {
		case f == 1 && b == 1:
			// manifold edge
		case f+b == 1:
			report.BoundaryEdges++
		default:
			report.NonManifoldEdges++
		}
	}
	return report
}
