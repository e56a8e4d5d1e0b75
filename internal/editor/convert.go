package editor

import (
	"fmt"
	"sort"

	"github.com/tiot2/wmt/pkg/wmt"
)

// Export converts the editor contents into a WMT document. Editor ids
// are renumbered into dense 0-based point indices in ascending id
// order. Edges used by exactly one polygon become walls; edges shared
// by two polygons are left open so they resolve as portals.
func (e *Editor) Export() *wmt.Document {
	doc := wmt.NewDocument()

	pointIDs := make([]PointID, 0, len(e.points))
	for id := range e.points {
		pointIDs = append(pointIDs, id)
	}
	sort.Slice(pointIDs, func(i, j int) bool { return pointIDs[i] < pointIDs[j] })

	indexOf := make(map[PointID]uint32, len(pointIDs))
	for _, id := range pointIDs {
		indexOf[id] = doc.AddPoint(e.points[id])
	}

	polygonIDs := make([]PolygonID, 0, len(e.polygons))
	for id := range e.polygons {
		polygonIDs = append(polygonIDs, id)
	}
	sort.Slice(polygonIDs, func(i, j int) bool { return polygonIDs[i] < polygonIDs[j] })

	edgeUse := make(map[wmt.Wall]int)
	for _, pid := range polygonIDs {
		poly := e.polygons[pid]

		indices := make([]uint32, 0, len(poly.Points))
		for _, id := range poly.Points {
			indices = append(indices, indexOf[id])
		}
		doc.AddSector(wmt.SectorDef{Floor: poly.Floor, Ceiling: poly.Ceiling, Points: indices})

		for i, a := range indices {
			b := indices[(i+1)%len(indices)]
			edgeUse[wmt.NewWall(a, b)]++
		}
	}

	for edge, uses := range edgeUse {
		if uses == 1 {
			doc.Walls[edge] = struct{}{}
		}
	}

	return doc
}

// Load builds an editor from a document. Point indices become point
// ids, sectors become polygons. The document's wall set is not kept:
// Export re-derives walls from polygon adjacency.
func Load(doc *wmt.Document) (*Editor, error) {
	e := New()

	ids := make([]PointID, 0, len(doc.Points))
	for _, p := range doc.Points {
		ids = append(ids, e.InsertPoint(p))
	}

	for _, sector := range doc.Sectors {
		if err := e.BeginPolygon(); err != nil {
			return nil, err
		}
		for _, idx := range sector.Points {
			if int(idx) >= len(ids) {
				e.CancelPolygon()
				return nil, fmt.Errorf("%w: %d", ErrUnknownPoint, idx)
			}
			if err := e.AppendVertex(ids[idx]); err != nil {
				return nil, err
			}
		}
		if _, err := e.ClosePolygon(sector.Floor, sector.Ceiling); err != nil {
			return nil, err
		}
	}

	return e, nil
}
