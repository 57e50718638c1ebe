package footprint

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/bezpath"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOutlineOfStraightRun(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []mgl64.Vec3{
		bezpath.P(0, 0, 0),
		bezpath.P(2, 0, 0),
		bezpath.P(4, 0, 0),
	}
	poly := Outline(pts, 0.5)
	if len(poly) != 2 {
		t.Fatalf("Expected one contour per edge, got %d", len(poly))
	}
	for _, c := range []struct {
		x, y float64
		hit  bool
	}{
		{2, 0.2, true},
		{0.5, -0.4, true},
		{3.9, 0, true},
		{2, 0.8, false},
		{-2, 0, false},
		{5, 5, false},
	} {
		if got := Contains(poly, c.x, c.y); got != c.hit {
			t.Errorf("Contains(%g,%g) = %v, want %v", c.x, c.y, got, c.hit)
		}
	}
}

func TestFootprintCoversJoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// a right-angle turn: the outer corner is covered because each quad
	// extends past its endpoints
	pts := []mgl64.Vec3{
		bezpath.P(0, 0, 0),
		bezpath.P(1, 0, 0),
		bezpath.P(1, 1, 0),
	}
	poly := Outline(pts, 0.25)
	if !Contains(poly, 1, 0) {
		t.Errorf("Expected the joint vertex itself to hit")
	}
	if !Contains(poly, 1.2, -0.2) {
		t.Errorf("Expected the outer corner of the turn to hit")
	}
	if Contains(poly, 1.6, -0.6) {
		t.Errorf("Expected a point beyond the corner band to miss")
	}
}

func TestOutlineIgnoresDegenerateEdges(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []mgl64.Vec3{
		bezpath.P(0, 0, 0),
		bezpath.P(0, 0, 5), // projects onto the previous point
		bezpath.P(1, 0, 0),
	}
	poly := Outline(pts, 0.25)
	if !Contains(poly, 0.5, 0) {
		t.Errorf("Expected the surviving edge to contribute a footprint")
	}
}

func TestOutlineProjectsToWorkingPlane(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// z is dropped: a curve floating above the plane still has a footprint
	pts := []mgl64.Vec3{
		bezpath.P(0, 0, 3),
		bezpath.P(1, 1, 7),
	}
	poly := Outline(pts, 0.3)
	if !Contains(poly, 0.5, 0.5) {
		t.Errorf("Expected footprint under the elevated edge")
	}
}

func TestOutlineRejectsNonPositiveWidth(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []mgl64.Vec3{bezpath.P(0, 0, 0), bezpath.P(1, 0, 0)}
	if poly := Outline(pts, 0); len(poly) != 0 {
		t.Errorf("Expected empty footprint for width 0")
	}
	if poly := Outline(pts[:1], 1); len(poly) != 0 {
		t.Errorf("Expected empty footprint for a single point")
	}
}
