// Package wmt implements the WMT ("Weird Map Text") level format: a
// line-oriented text format describing points, walls, sectors and an
// initial camera pose for a sector/portal style 2.5D level.
package wmt

import (
	"github.com/tiot2/wmt/pkg/math"
)

// Wall is an unordered pair of point indices. Two walls over the same
// points compare equal regardless of the order they were written in.
type Wall = math.Pair[uint32]

// NewWall returns the normalized wall between point indices a and b.
func NewWall(a, b uint32) Wall {
	return math.NewPair(a, b)
}

// SectorDef is a sector as written in a map file: a polygon over point
// indices with floor and ceiling heights.
type SectorDef struct {
	Floor   float32
	Ceiling float32
	Points  []uint32
}

// Camera is the initial viewer pose. Rotation is in radians,
// counter-clockwise, nominally in [0, 2*pi).
type Camera struct {
	X        float32
	Y        float32
	Height   float32
	Rotation float32
}

// Location returns the camera position as a vector.
func (c Camera) Location() math.Vec2 {
	return math.Vec2{X: c.X, Y: c.Y}
}

// Document is a parsed WMT map file. Point indices used by walls,
// sectors and the camera refer to Points by position, 0-based.
type Document struct {
	Points    []math.Vec2
	Walls     map[Wall]struct{}
	Sectors   []SectorDef
	Camera    Camera
	HasCamera bool
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		Walls: make(map[Wall]struct{}),
	}
}

// AddPoint appends a point and returns its index.
func (d *Document) AddPoint(p math.Vec2) uint32 {
	d.Points = append(d.Points, p)
	return uint32(len(d.Points) - 1)
}

// AddWall inserts a wall between two point indices. Duplicates collapse.
func (d *Document) AddWall(a, b uint32) {
	if d.Walls == nil {
		d.Walls = make(map[Wall]struct{})
	}
	d.Walls[NewWall(a, b)] = struct{}{}
}

// HasWall reports whether a wall exists between two point indices.
func (d *Document) HasWall(a, b uint32) bool {
	_, ok := d.Walls[NewWall(a, b)]
	return ok
}

// AddSector appends a sector definition.
func (d *Document) AddSector(s SectorDef) {
	d.Sectors = append(d.Sectors, s)
}

// SetCamera sets the initial camera pose.
func (d *Document) SetCamera(c Camera) {
	d.Camera = c
	d.HasCamera = true
}

// Bounds returns the axis-aligned bounding box over all points.
// ok is false when the document has no points.
func (d *Document) Bounds() (min, max math.Vec2, ok bool) {
	if len(d.Points) == 0 {
		return math.Vec2{}, math.Vec2{}, false
	}

	min, max = d.Points[0], d.Points[0]
	for _, p := range d.Points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max, true
}

// HeightRange returns the lowest floor and highest ceiling over all
// sectors. ok is false when the document has no sectors.
func (d *Document) HeightRange() (floor, ceiling float32, ok bool) {
	if len(d.Sectors) == 0 {
		return 0, 0, false
	}

	floor, ceiling = d.Sectors[0].Floor, d.Sectors[0].Ceiling
	for _, s := range d.Sectors[1:] {
		if s.Floor < floor {
			floor = s.Floor
		}
		if s.Ceiling > ceiling {
			ceiling = s.Ceiling
		}
	}
	return floor, ceiling, true
}

// SectorPolygon resolves a sector's point indices to coordinates.
// Indices out of bounds yield ok == false.
func (d *Document) SectorPolygon(s SectorDef) (points []math.Vec2, ok bool) {
	points = make([]math.Vec2, 0, len(s.Points))
	for _, idx := range s.Points {
		if int(idx) >= len(d.Points) {
			return nil, false
		}
		points = append(points, d.Points[idx])
	}
	return points, true
}
