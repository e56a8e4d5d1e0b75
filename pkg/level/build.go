package level

import (
	"errors"
	"fmt"

	"github.com/tiot2/wmt/pkg/wmt"
)

// Build errors.
var (
	ErrPointIndex       = errors.New("point index out of bounds")
	ErrSectorBounds     = errors.New("sector floor above ceiling")
	ErrNoAdjacentSector = errors.New("no adjacent sector for portal edge")
)

// Build compiles a document into a level. Every consecutive point pair
// of a sector polygon becomes an edge: pairs listed in the document's
// wall set become solid walls, any other pair must be shared with
// exactly one other sector and becomes a portal into it. A shared pair
// that is also a wall stays solid for both sectors.
func Build(doc *wmt.Document) (*Level, error) {
	// Per-sector edge pair sets, for the adjacency search.
	pairSets := make([]map[wmt.Wall]struct{}, len(doc.Sectors))
	for i, def := range doc.Sectors {
		set := make(map[wmt.Wall]struct{}, len(def.Points))
		for j, a := range def.Points {
			b := def.Points[(j+1)%len(def.Points)]
			set[wmt.NewWall(a, b)] = struct{}{}
		}
		pairSets[i] = set
	}

	lvl := &Level{
		Sectors: make([]Sector, 0, len(doc.Sectors)),
		Camera:  doc.Camera,
	}

	for si, def := range doc.Sectors {
		if def.Floor > def.Ceiling {
			return nil, fmt.Errorf("sector %d: %w: floor %g, ceiling %g", si, ErrSectorBounds, def.Floor, def.Ceiling)
		}

		points, ok := doc.SectorPolygon(def)
		if !ok {
			return nil, fmt.Errorf("sector %d: %w: map has %d points", si, ErrPointIndex, len(doc.Points))
		}

		edges := buildEdges(points)
		for ei := range edges {
			a := def.Points[ei]
			b := def.Points[(ei+1)%len(def.Points)]
			pair := wmt.NewWall(a, b)

			if _, isWall := doc.Walls[pair]; isWall {
				edges[ei].Kind = EdgeWall
				continue
			}

			adjacent, found := findAdjacent(pairSets, si, pair)
			if !found {
				return nil, fmt.Errorf("sector %d: %w: points %d-%d", si, ErrNoAdjacentSector, pair.A, pair.B)
			}
			edges[ei].Kind = EdgePortal
			edges[ei].Portal = adjacent
		}

		lvl.Sectors = append(lvl.Sectors, Sector{
			Points:  points,
			Edges:   edges,
			Floor:   def.Floor,
			Ceiling: def.Ceiling,
		})
	}

	return lvl, nil
}

// findAdjacent returns the first sector other than self whose edge
// pair set contains the pair.
func findAdjacent(pairSets []map[wmt.Wall]struct{}, self int, pair wmt.Wall) (SectorID, bool) {
	for i, set := range pairSets {
		if i == self {
			continue
		}
		if _, ok := set[pair]; ok {
			return SectorID(i), true
		}
	}
	return 0, false
}
