// Package mapgen generates random WMT maps for testing and demos.
package mapgen

import (
	"errors"
	"fmt"

	"github.com/tiot2/wmt/pkg/math"
	"github.com/tiot2/wmt/pkg/wmt"
)

// Config errors.
var (
	ErrBadRoomCount = errors.New("room counts must be at least 1")
	ErrBadRoomSize  = errors.New("room size must be positive")
	ErrBadJitter    = errors.New("jitter must be in [0, 0.45)")
	ErrBadCeiling   = errors.New("ceiling range must be positive and ordered")
)

// Config controls map generation.
type Config struct {
	// RoomsX and RoomsY give the size of the room grid.
	RoomsX int
	RoomsY int
	// RoomSize is the side length of a grid cell.
	RoomSize float32
	// Jitter displaces each lattice point by up to Jitter*RoomSize in
	// both axes. Below 0.45 the room polygons stay simple.
	Jitter float32
	// MinCeiling and MaxCeiling bound the per-room ceiling height.
	// Floors are at zero.
	MinCeiling float32
	MaxCeiling float32
	// Seed selects the deterministic random sequence.
	Seed uint32
}

// DefaultConfig returns a 3x3 grid of gently jittered rooms.
func DefaultConfig() Config {
	return Config{
		RoomsX:     3,
		RoomsY:     3,
		RoomSize:   4,
		Jitter:     0.15,
		MinCeiling: 1,
		MaxCeiling: 2,
		Seed:       1,
	}
}

func (c Config) validate() error {
	if c.RoomsX < 1 || c.RoomsY < 1 {
		return fmt.Errorf("%w: %dx%d", ErrBadRoomCount, c.RoomsX, c.RoomsY)
	}
	if c.RoomSize <= 0 {
		return fmt.Errorf("%w: %g", ErrBadRoomSize, c.RoomSize)
	}
	if c.Jitter < 0 || c.Jitter >= 0.45 {
		return fmt.Errorf("%w: %g", ErrBadJitter, c.Jitter)
	}
	if c.MinCeiling <= 0 || c.MaxCeiling < c.MinCeiling {
		return fmt.Errorf("%w: [%g, %g]", ErrBadCeiling, c.MinCeiling, c.MaxCeiling)
	}
	return nil
}

// Generate builds a map of RoomsX by RoomsY rooms over a jittered
// lattice. Neighbouring rooms share their boundary points, so interior
// edges resolve to portals and the outer perimeter to walls; the result
// always compiles with level.Build. The camera starts in the corner
// room.
func Generate(cfg Config) (*wmt.Document, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	rng := NewXorshift32(cfg.Seed)
	doc := wmt.NewDocument()

	// Lattice of shared corner points.
	cols := cfg.RoomsX + 1
	rows := cfg.RoomsY + 1
	amplitude := cfg.Jitter * cfg.RoomSize

	for iy := 0; iy < rows; iy++ {
		for ix := 0; ix < cols; ix++ {
			doc.AddPoint(math.Vec2{
				X: float32(ix)*cfg.RoomSize + rng.Range(-amplitude, amplitude),
				Y: float32(iy)*cfg.RoomSize + rng.Range(-amplitude, amplitude),
			})
		}
	}

	corner := func(ix, iy int) uint32 {
		return uint32(iy*cols + ix)
	}

	for cy := 0; cy < cfg.RoomsY; cy++ {
		for cx := 0; cx < cfg.RoomsX; cx++ {
			bl := corner(cx, cy)
			br := corner(cx+1, cy)
			tr := corner(cx+1, cy+1)
			tl := corner(cx, cy+1)

			// Perimeter edges are solid; interior edges are left to
			// resolve as portals between the two rooms sharing them.
			if cy == 0 {
				doc.AddWall(bl, br)
			}
			if cy == cfg.RoomsY-1 {
				doc.AddWall(tl, tr)
			}
			if cx == 0 {
				doc.AddWall(bl, tl)
			}
			if cx == cfg.RoomsX-1 {
				doc.AddWall(br, tr)
			}

			doc.AddSector(wmt.SectorDef{
				Floor:   0,
				Ceiling: rng.Range(cfg.MinCeiling, cfg.MaxCeiling),
				Points:  []uint32{bl, br, tr, tl},
			})
		}
	}

	// Camera in the centre of the first room, halfway up.
	first := doc.Sectors[0]
	poly, _ := doc.SectorPolygon(first)
	var centre math.Vec2
	for _, p := range poly {
		centre = centre.Add(p)
	}
	centre = centre.Scale(1 / float32(len(poly)))

	doc.SetCamera(wmt.Camera{
		X:      centre.X,
		Y:      centre.Y,
		Height: (first.Floor + first.Ceiling) / 2,
	})

	return doc, nil
}
