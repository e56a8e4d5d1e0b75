package wmt

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tiot2/wmt/pkg/math"
)

// WMT format errors.
var (
	ErrBadNumber            = errors.New("malformed number")
	ErrUnknownLineType      = errors.New("unknown line type")
	ErrMissingCoordinates   = errors.New("not enough point coordinates")
	ErrMissingCameraParams  = errors.New("not enough camera parameters")
	ErrTooFewSectorVertices = errors.New("sector needs at least 3 vertices")
)

// Parse parses a WMT map from raw text.
//
// The format is line oriented. Each non-empty line starts with a type
// token followed by space-separated fields:
//
//	p X Y                          point, indexed by appearance order
//	w A B                          wall between point indices A and B
//	s Floor Ceil P1 P2 ... Pn      sector polygon over point indices
//	c X Y H Alpha                  initial camera pose, Alpha in radians
//	# ...                          comment
//
// Long forms "point", "wall", "sector" and "camera" are accepted.
// References may precede the points they name; index bounds are a
// semantic property checked by Validate and by level.Build, not here.
func Parse(data []byte) (*Document, error) {
	doc := NewDocument()

	for i, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		lineNo := i + 1
		kind, args := fields[0], fields[1:]

		if strings.HasPrefix(kind, "#") {
			continue
		}

		switch kind {
		case "p", "point":
			if len(args) < 2 {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingCoordinates)
			}
			x, err := parseFloat(args[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			y, err := parseFloat(args[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			doc.AddPoint(math.Vec2{X: x, Y: y})

		case "w", "wall":
			if len(args) < 2 {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingCoordinates)
			}
			a, err := parseIndex(args[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			b, err := parseIndex(args[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			doc.AddWall(a, b)

		case "s", "sector":
			if len(args) < 2 {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingCoordinates)
			}
			floor, err := parseFloat(args[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			ceiling, err := parseFloat(args[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}

			indices := make([]uint32, 0, len(args)-2)
			for _, arg := range args[2:] {
				idx, err := parseIndex(arg)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				indices = append(indices, idx)
			}
			if len(indices) < 3 {
				return nil, fmt.Errorf("line %d: %w: got %d", lineNo, ErrTooFewSectorVertices, len(indices))
			}

			doc.AddSector(SectorDef{Floor: floor, Ceiling: ceiling, Points: indices})

		case "c", "camera":
			if len(args) < 4 {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingCameraParams)
			}
			var params [4]float32
			for j, arg := range args[:4] {
				v, err := parseFloat(arg)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				params[j] = v
			}
			doc.SetCamera(Camera{X: params[0], Y: params[1], Height: params[2], Rotation: params[3]})

		default:
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrUnknownLineType, kind)
		}
	}

	return doc, nil
}

// ParseFile parses a WMT map from disk.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading WMT file: %w", err)
	}
	return Parse(data)
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}
	return float32(v), nil
}

func parseIndex(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: point index %q", ErrBadNumber, s)
	}
	return uint32(v), nil
}
