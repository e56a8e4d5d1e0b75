// Package level compiles WMT documents into resolved levels: sector
// polygons with classified edges (solid walls or portals into the
// adjacent sector) plus position queries over them.
package level

import (
	"fmt"

	"github.com/tiot2/wmt/pkg/math"
	"github.com/tiot2/wmt/pkg/wmt"
)

// SectorID identifies a sector by its position in the level.
type SectorID uint32

// EdgeKind classifies a sector edge.
type EdgeKind uint8

// Edge kinds.
const (
	// EdgeWall is a solid boundary.
	EdgeWall EdgeKind = iota
	// EdgePortal opens into an adjacent sector.
	EdgePortal
)

// String returns a human-readable edge kind name.
func (k EdgeKind) String() string {
	switch k {
	case EdgeWall:
		return "Wall"
	case EdgePortal:
		return "Portal"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Edge is one side of a sector polygon with precomputed line terms.
type Edge struct {
	P0, P1 math.Vec2
	// D is P1 - P0.
	D math.Vec2
	// DCrossP0 caches D x P0 for the side-of-line test.
	DCrossP0 float32
	Kind     EdgeKind
	// Portal is the destination sector when Kind == EdgePortal.
	Portal SectorID
}

// Sector is a resolved sector: a polygon with vertical extent and one
// classified edge per consecutive point pair.
type Sector struct {
	Points  []math.Vec2
	Edges   []Edge
	Floor   float32
	Ceiling float32
}

// buildEdges computes the edge line terms for the sector polygon.
// Edge kinds are left at their zero value; Build classifies them.
func buildEdges(points []math.Vec2) []Edge {
	edges := make([]Edge, 0, len(points))
	for i, p0 := range points {
		p1 := points[(i+1)%len(points)]
		d := p1.Sub(p0)
		edges = append(edges, Edge{
			P0:       p0,
			P1:       p1,
			D:        d,
			DCrossP0: d.Cross(p0),
		})
	}
	return edges
}

// Contains reports whether a point lies inside the sector polygon.
// The test collects the side of every edge line; the point is inside
// when all edges agree, for either winding. Boundary points count as
// inside.
func (s *Sector) Contains(p math.Vec2) bool {
	var positive, negative bool
	for _, e := range s.Edges {
		cross := e.D.X*p.Y - e.D.Y*p.X - e.DCrossP0
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// IsConvex reports whether the sector polygon is convex.
func (s *Sector) IsConvex() bool {
	return math.IsConvex(s.Points)
}

// PortalTargets returns the destination sectors of all portal edges.
func (s *Sector) PortalTargets() []SectorID {
	var targets []SectorID
	for _, e := range s.Edges {
		if e.Kind == EdgePortal {
			targets = append(targets, e.Portal)
		}
	}
	return targets
}

// Level is a compiled map: resolved sectors plus the initial camera
// pose carried over from the document.
type Level struct {
	Sectors []Sector
	Camera  wmt.Camera
}

// GetSector returns the sector with the given id, or nil when the id
// is out of range.
func (l *Level) GetSector(id SectorID) *Sector {
	if int(id) >= len(l.Sectors) {
		return nil
	}
	return &l.Sectors[id]
}

// FindSector returns the first sector containing the location.
func (l *Level) FindSector(location math.Vec2) (SectorID, bool) {
	for i := range l.Sectors {
		if l.Sectors[i].Contains(location) {
			return SectorID(i), true
		}
	}
	return 0, false
}

// FindAdjacentSector looks for the location in the given sector and in
// the sectors its portals open into. This is the cheap query for
// tracking a position that moves continuously between frames.
func (l *Level) FindAdjacentSector(location math.Vec2, adjacentFor SectorID) (SectorID, bool) {
	sector := l.GetSector(adjacentFor)
	if sector == nil {
		return 0, false
	}

	if sector.Contains(location) {
		return adjacentFor, true
	}

	for _, id := range sector.PortalTargets() {
		if neighbour := l.GetSector(id); neighbour != nil && neighbour.Contains(location) {
			return id, true
		}
	}
	return 0, false
}

// FindSectorFrom resolves a location starting from a previously known
// sector, falling back to a full scan when the adjacency walk misses.
func (l *Level) FindSectorFrom(location math.Vec2, old SectorID) (SectorID, bool) {
	if id, ok := l.FindAdjacentSector(location, old); ok {
		return id, true
	}
	return l.FindSector(location)
}
