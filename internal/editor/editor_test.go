package editor

import (
	"errors"
	"testing"

	"github.com/tiot2/wmt/pkg/level"
	"github.com/tiot2/wmt/pkg/math"
	"github.com/tiot2/wmt/pkg/wmt"
)

// buildTriangle closes a triangle over three fresh points.
func buildTriangle(t *testing.T, e *Editor) (PolygonID, [3]PointID) {
	t.Helper()

	a := e.InsertPoint(math.Vec2{X: 0, Y: 0})
	b := e.InsertPoint(math.Vec2{X: 4, Y: 0})
	c := e.InsertPoint(math.Vec2{X: 0, Y: 4})

	if err := e.BeginPolygon(); err != nil {
		t.Fatalf("BeginPolygon failed: %v", err)
	}
	for _, id := range []PointID{a, b, c} {
		if err := e.AppendVertex(id); err != nil {
			t.Fatalf("AppendVertex failed: %v", err)
		}
	}
	pid, err := e.ClosePolygon(0, 1)
	if err != nil {
		t.Fatalf("ClosePolygon failed: %v", err)
	}
	return pid, [3]PointID{a, b, c}
}

func TestEditor_InsertAndMovePoint(t *testing.T) {
	e := New()

	id := e.InsertPoint(math.Vec2{X: 1, Y: 2})
	if p, ok := e.Point(id); !ok || p != (math.Vec2{X: 1, Y: 2}) {
		t.Errorf("Point(%d) = %v, %v", id, p, ok)
	}

	if err := e.MovePoint(id, math.Vec2{X: 5, Y: 5}); err != nil {
		t.Fatalf("MovePoint failed: %v", err)
	}
	if p, _ := e.Point(id); p != (math.Vec2{X: 5, Y: 5}) {
		t.Errorf("point after move = %v", p)
	}

	if err := e.MovePoint(99, math.Vec2{}); !errors.Is(err, ErrUnknownPoint) {
		t.Errorf("expected ErrUnknownPoint, got %v", err)
	}
}

func TestEditor_IDsAreStable(t *testing.T) {
	e := New()

	a := e.InsertPoint(math.Vec2{X: 0, Y: 0})
	b := e.InsertPoint(math.Vec2{X: 1, Y: 0})
	e.ErasePoint(a)
	c := e.InsertPoint(math.Vec2{X: 2, Y: 0})

	if c == a || c == b {
		t.Errorf("erased id was reused: a=%d b=%d c=%d", a, b, c)
	}
	if p, ok := e.Point(b); !ok || p != (math.Vec2{X: 1, Y: 0}) {
		t.Error("surviving point lost after erase")
	}
}

func TestEditor_ClosePolygonValidation(t *testing.T) {
	e := New()

	if _, err := e.ClosePolygon(0, 1); !errors.Is(err, ErrNotBuilding) {
		t.Errorf("expected ErrNotBuilding, got %v", err)
	}

	a := e.InsertPoint(math.Vec2{})
	b := e.InsertPoint(math.Vec2{X: 1})

	if err := e.BeginPolygon(); err != nil {
		t.Fatalf("BeginPolygon failed: %v", err)
	}
	if err := e.BeginPolygon(); !errors.Is(err, ErrAlreadyBuilding) {
		t.Errorf("expected ErrAlreadyBuilding, got %v", err)
	}

	e.AppendVertex(a)
	e.AppendVertex(b)
	if _, err := e.ClosePolygon(0, 1); !errors.Is(err, ErrTooFewVertices) {
		t.Errorf("expected ErrTooFewVertices, got %v", err)
	}

	c := e.InsertPoint(math.Vec2{Y: 1})
	e.AppendVertex(c)
	if _, err := e.ClosePolygon(2, 1); !errors.Is(err, ErrInvertedBounds) {
		t.Errorf("expected ErrInvertedBounds, got %v", err)
	}

	if _, err := e.ClosePolygon(0, 1); err != nil {
		t.Errorf("valid close failed: %v", err)
	}
}

func TestEditor_AppendVertexUnknownPoint(t *testing.T) {
	e := New()
	if err := e.AppendVertex(0); !errors.Is(err, ErrNotBuilding) {
		t.Errorf("expected ErrNotBuilding, got %v", err)
	}

	e.BeginPolygon()
	if err := e.AppendVertex(42); !errors.Is(err, ErrUnknownPoint) {
		t.Errorf("expected ErrUnknownPoint, got %v", err)
	}
}

func TestEditor_ErasePointCascades(t *testing.T) {
	e := New()
	pid, pts := buildTriangle(t, e)

	// Dropping a vertex leaves the polygon under 3 points, so it goes.
	e.ErasePoint(pts[0])

	if _, ok := e.Polygon(pid); ok {
		t.Error("polygon should be removed when it falls under 3 vertices")
	}
	if e.PointCount() != 2 {
		t.Errorf("expected 2 points left, got %d", e.PointCount())
	}
}

func TestEditor_ErasePointKeepsLargerPolygon(t *testing.T) {
	e := New()

	a := e.InsertPoint(math.Vec2{X: 0, Y: 0})
	b := e.InsertPoint(math.Vec2{X: 4, Y: 0})
	c := e.InsertPoint(math.Vec2{X: 4, Y: 4})
	d := e.InsertPoint(math.Vec2{X: 0, Y: 4})

	e.BeginPolygon()
	for _, id := range []PointID{a, b, c, d} {
		e.AppendVertex(id)
	}
	pid, err := e.ClosePolygon(0, 1)
	if err != nil {
		t.Fatalf("ClosePolygon failed: %v", err)
	}

	e.ErasePoint(d)

	poly, ok := e.Polygon(pid)
	if !ok {
		t.Fatal("quad reduced to triangle should survive")
	}
	if len(poly.Points) != 3 {
		t.Errorf("expected 3 vertices, got %d", len(poly.Points))
	}
}

func TestEditor_SetBounds(t *testing.T) {
	e := New()
	pid, _ := buildTriangle(t, e)

	if err := e.SetBounds(pid, -1, 3); err != nil {
		t.Fatalf("SetBounds failed: %v", err)
	}
	poly, _ := e.Polygon(pid)
	if poly.Floor != -1 || poly.Ceiling != 3 {
		t.Errorf("bounds = [%g, %g]", poly.Floor, poly.Ceiling)
	}

	if err := e.SetBounds(pid, 5, 1); !errors.Is(err, ErrInvertedBounds) {
		t.Errorf("expected ErrInvertedBounds, got %v", err)
	}
	if err := e.SetBounds(99, 0, 1); !errors.Is(err, ErrUnknownPolygon) {
		t.Errorf("expected ErrUnknownPolygon, got %v", err)
	}
}

func TestEditor_ExportCompiles(t *testing.T) {
	e := New()

	// Two squares sharing the b-c edge.
	a := e.InsertPoint(math.Vec2{X: 0, Y: 0})
	b := e.InsertPoint(math.Vec2{X: 4, Y: 0})
	c := e.InsertPoint(math.Vec2{X: 4, Y: 4})
	d := e.InsertPoint(math.Vec2{X: 0, Y: 4})
	f := e.InsertPoint(math.Vec2{X: 8, Y: 0})
	g := e.InsertPoint(math.Vec2{X: 8, Y: 4})

	e.BeginPolygon()
	for _, id := range []PointID{a, b, c, d} {
		e.AppendVertex(id)
	}
	if _, err := e.ClosePolygon(0, 1); err != nil {
		t.Fatalf("ClosePolygon failed: %v", err)
	}

	e.BeginPolygon()
	for _, id := range []PointID{b, f, g, c} {
		e.AppendVertex(id)
	}
	if _, err := e.ClosePolygon(0, 1); err != nil {
		t.Fatalf("ClosePolygon failed: %v", err)
	}

	doc := e.Export()

	if len(doc.Points) != 6 || len(doc.Sectors) != 2 {
		t.Fatalf("exported %d points, %d sectors", len(doc.Points), len(doc.Sectors))
	}
	// 7 distinct edges, 1 shared: 6 walls.
	if len(doc.Walls) != 6 {
		t.Errorf("expected 6 walls, got %d", len(doc.Walls))
	}

	lvl, err := level.Build(doc)
	if err != nil {
		t.Fatalf("exported document does not compile: %v", err)
	}

	portals := 0
	for i := range lvl.Sectors {
		portals += len(lvl.Sectors[i].PortalTargets())
	}
	if portals != 2 {
		t.Errorf("expected 2 portal edges, got %d", portals)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	source := "p 0 0\np 4 0\np 4 4\np 0 4\nw 0 1\nw 1 2\nw 2 3\nw 3 0\ns 0 1 0 1 2 3\n"
	doc, err := wmt.Parse([]byte(source))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	e, err := Load(doc)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if e.PointCount() != 4 || e.PolygonCount() != 1 {
		t.Fatalf("loaded %d points, %d polygons", e.PointCount(), e.PolygonCount())
	}

	exported := e.Export()
	if len(exported.Points) != 4 || len(exported.Sectors) != 1 || len(exported.Walls) != 4 {
		t.Errorf("round trip: %d points, %d sectors, %d walls",
			len(exported.Points), len(exported.Sectors), len(exported.Walls))
	}
	if _, err := level.Build(exported); err != nil {
		t.Errorf("round-tripped document does not compile: %v", err)
	}
}

func TestLoad_BadIndex(t *testing.T) {
	doc := wmt.NewDocument()
	doc.AddPoint(math.Vec2{})
	doc.AddSector(wmt.SectorDef{Floor: 0, Ceiling: 1, Points: []uint32{0, 1, 2}})

	if _, err := Load(doc); !errors.Is(err, ErrUnknownPoint) {
		t.Errorf("expected ErrUnknownPoint, got %v", err)
	}
}
