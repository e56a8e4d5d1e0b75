package wmt

import (
	"fmt"

	"github.com/tiot2/wmt/pkg/math"
)

// Severity classifies a validation issue.
type Severity uint8

// Issue severities.
const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// MarshalText implements encoding.TextMarshaler for JSON reports.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IssueKind identifies a class of validation issue.
type IssueKind string

// Issue kinds.
const (
	IssuePointIndex        IssueKind = "point-index-out-of-bounds"
	IssueDegenerateWall    IssueKind = "degenerate-wall"
	IssueSectorBounds      IssueKind = "floor-above-ceiling"
	IssueDuplicateVertex   IssueKind = "duplicate-sector-vertex"
	IssueZeroArea          IssueKind = "zero-area-sector"
	IssueSelfIntersection  IssueKind = "self-intersecting-sector"
	IssueUnreferencedPoint IssueKind = "unreferenced-point"
	IssueNoCamera          IssueKind = "no-camera"
)

// Issue is a single validation finding.
type Issue struct {
	Kind     IssueKind `json:"kind"`
	Severity Severity  `json:"severity"`
	// Sector is the index of the offending sector, or -1.
	Sector int `json:"sector"`
	// Point is the offending point index, or -1.
	Point   int    `json:"point,omitempty"`
	Message string `json:"message"`
}

// String formats the issue as "severity: message".
func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Severity, i.Message)
}

// Validate checks the document against the properties the format
// implies: every referenced point index must be within the point list,
// floors must not exceed ceilings, and sector polygons must be closed,
// non-degenerate and free of self-intersections. Findings that do not
// make the map unloadable (unused points, a missing camera, duplicate
// consecutive vertices) are reported as warnings.
func (d *Document) Validate() []Issue {
	var issues []Issue

	referenced := make([]bool, len(d.Points))
	ref := func(idx uint32) bool {
		if int(idx) >= len(d.Points) {
			return false
		}
		referenced[idx] = true
		return true
	}

	for w := range d.Walls {
		if w.A == w.B {
			issues = append(issues, Issue{
				Kind:     IssueDegenerateWall,
				Severity: SeverityWarning,
				Sector:   -1,
				Point:    int(w.A),
				Message:  fmt.Sprintf("wall connects point %d to itself", w.A),
			})
		}
		for _, idx := range [2]uint32{w.A, w.B} {
			if !ref(idx) {
				issues = append(issues, Issue{
					Kind:     IssuePointIndex,
					Severity: SeverityError,
					Sector:   -1,
					Point:    int(idx),
					Message:  fmt.Sprintf("wall references point %d, map has %d points", idx, len(d.Points)),
				})
			}
		}
	}

	for si, sector := range d.Sectors {
		issues = append(issues, d.validateSector(si, sector, ref)...)
	}

	for idx, used := range referenced {
		if !used {
			issues = append(issues, Issue{
				Kind:     IssueUnreferencedPoint,
				Severity: SeverityWarning,
				Sector:   -1,
				Point:    idx,
				Message:  fmt.Sprintf("point %d is not referenced by any wall or sector", idx),
			})
		}
	}

	if !d.HasCamera {
		issues = append(issues, Issue{
			Kind:     IssueNoCamera,
			Severity: SeverityWarning,
			Sector:   -1,
			Point:    -1,
			Message:  "map defines no camera",
		})
	}

	return issues
}

func (d *Document) validateSector(si int, sector SectorDef, ref func(uint32) bool) []Issue {
	var issues []Issue

	if sector.Floor > sector.Ceiling {
		issues = append(issues, Issue{
			Kind:     IssueSectorBounds,
			Severity: SeverityError,
			Sector:   si,
			Point:    -1,
			Message:  fmt.Sprintf("sector %d floor %g above ceiling %g", si, sector.Floor, sector.Ceiling),
		})
	}

	inBounds := true
	for _, idx := range sector.Points {
		if !ref(idx) {
			inBounds = false
			issues = append(issues, Issue{
				Kind:     IssuePointIndex,
				Severity: SeverityError,
				Sector:   si,
				Point:    int(idx),
				Message:  fmt.Sprintf("sector %d references point %d, map has %d points", si, idx, len(d.Points)),
			})
		}
	}

	n := len(sector.Points)
	for i, idx := range sector.Points {
		if idx == sector.Points[(i+1)%n] {
			issues = append(issues, Issue{
				Kind:     IssueDuplicateVertex,
				Severity: SeverityWarning,
				Sector:   si,
				Point:    int(idx),
				Message:  fmt.Sprintf("sector %d repeats point %d on consecutive vertices", si, idx),
			})
		}
	}

	// Geometric checks only make sense once the indices resolve.
	if !inBounds {
		return issues
	}

	poly, _ := d.SectorPolygon(sector)

	if math.SignedArea(poly) == 0 {
		issues = append(issues, Issue{
			Kind:     IssueZeroArea,
			Severity: SeverityError,
			Sector:   si,
			Point:    -1,
			Message:  fmt.Sprintf("sector %d polygon has zero area", si),
		})
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// Skip adjacent edges (they share an endpoint).
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			if math.SegmentsIntersect(poly[i], poly[(i+1)%n], poly[j], poly[(j+1)%n]) {
				issues = append(issues, Issue{
					Kind:     IssueSelfIntersection,
					Severity: SeverityError,
					Sector:   si,
					Point:    -1,
					Message:  fmt.Sprintf("sector %d edges %d and %d cross", si, i, j),
				})
			}
		}
	}

	return issues
}

// HasErrors reports whether any issue in the list is an error.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
