// Package editor provides an editable map model with stable ids, for
// building WMT documents incrementally.
package editor

import (
	"errors"
	"fmt"

	"github.com/tiot2/wmt/pkg/math"
)

// Editor errors.
var (
	ErrUnknownPoint    = errors.New("unknown point id")
	ErrUnknownPolygon  = errors.New("unknown polygon id")
	ErrNotBuilding     = errors.New("no polygon under construction")
	ErrAlreadyBuilding = errors.New("polygon already under construction")
	ErrTooFewVertices  = errors.New("polygon needs at least 3 vertices")
	ErrInvertedBounds  = errors.New("floor above ceiling")
)

// PointID identifies a point in the editor. Ids are stable: erasing a
// point never renumbers the others.
type PointID uint32

// PolygonID identifies a polygon in the editor.
type PolygonID uint32

// Polygon is a closed loop of point ids with vertical bounds.
type Polygon struct {
	Points  []PointID
	Floor   float32
	Ceiling float32
}

// Editor holds an in-progress map. Unlike wmt.Document, entities are
// keyed by id rather than position, so points can be erased and moved
// while polygons keep referring to the survivors.
type Editor struct {
	points   map[PointID]math.Vec2
	polygons map[PolygonID]*Polygon
	nextID   uint32

	// polygon under construction, if any
	building bool
	path     []PointID
}

// New returns an empty editor.
func New() *Editor {
	return &Editor{
		points:   make(map[PointID]math.Vec2),
		polygons: make(map[PolygonID]*Polygon),
	}
}

// InsertPoint adds a point and returns its id.
func (e *Editor) InsertPoint(location math.Vec2) PointID {
	id := PointID(e.nextID)
	e.nextID++
	e.points[id] = location
	return id
}

// Point returns the location of a point.
func (e *Editor) Point(id PointID) (math.Vec2, bool) {
	p, ok := e.points[id]
	return p, ok
}

// MovePoint relocates an existing point.
func (e *Editor) MovePoint(id PointID, location math.Vec2) error {
	if _, ok := e.points[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPoint, id)
	}
	e.points[id] = location
	return nil
}

// ErasePoint removes a point, strips it from every polygon and from
// the path under construction. Polygons left with fewer than 3
// vertices are dropped.
func (e *Editor) ErasePoint(id PointID) {
	delete(e.points, id)

	for pid, poly := range e.polygons {
		poly.Points = removeID(poly.Points, id)
		if len(poly.Points) < 3 {
			delete(e.polygons, pid)
		}
	}

	e.path = removeID(e.path, id)
}

func removeID(ids []PointID, id PointID) []PointID {
	kept := ids[:0]
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}

// PointCount returns the number of points.
func (e *Editor) PointCount() int {
	return len(e.points)
}

// PolygonCount returns the number of closed polygons.
func (e *Editor) PolygonCount() int {
	return len(e.polygons)
}

// Polygon returns a polygon by id.
func (e *Editor) Polygon(id PolygonID) (*Polygon, bool) {
	p, ok := e.polygons[id]
	return p, ok
}

// BeginPolygon starts collecting a new polygon path.
func (e *Editor) BeginPolygon() error {
	if e.building {
		return ErrAlreadyBuilding
	}
	e.building = true
	e.path = nil
	return nil
}

// AppendVertex adds an existing point to the path under construction.
func (e *Editor) AppendVertex(id PointID) error {
	if !e.building {
		return ErrNotBuilding
	}
	if _, ok := e.points[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPoint, id)
	}
	e.path = append(e.path, id)
	return nil
}

// ClosePolygon finishes the path under construction as a polygon with
// the given vertical bounds.
func (e *Editor) ClosePolygon(floor, ceiling float32) (PolygonID, error) {
	if !e.building {
		return 0, ErrNotBuilding
	}
	if len(e.path) < 3 {
		return 0, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(e.path))
	}
	if floor > ceiling {
		return 0, fmt.Errorf("%w: floor %g, ceiling %g", ErrInvertedBounds, floor, ceiling)
	}

	id := PolygonID(e.nextID)
	e.nextID++
	e.polygons[id] = &Polygon{Points: e.path, Floor: floor, Ceiling: ceiling}

	e.building = false
	e.path = nil
	return id, nil
}

// CancelPolygon discards the path under construction.
func (e *Editor) CancelPolygon() {
	e.building = false
	e.path = nil
}

// SetBounds updates a polygon's floor and ceiling.
func (e *Editor) SetBounds(id PolygonID, floor, ceiling float32) error {
	poly, ok := e.polygons[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPolygon, id)
	}
	if floor > ceiling {
		return fmt.Errorf("%w: floor %g, ceiling %g", ErrInvertedBounds, floor, ceiling)
	}
	poly.Floor = floor
	poly.Ceiling = ceiling
	return nil
}
