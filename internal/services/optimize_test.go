package services

import (
	"sort"
	"testing"

	"collection-route-service/internal/domain"
)

func point(address string, lat, lng float64) domain.RoutePoint {
	return domain.RoutePoint{
		Coordinates: domain.Coordinates{Lat: lat, Lng: lng},
		Address:     address,
		Status:      domain.PointPending,
	}
}

func addresses(points []domain.RoutePoint) []string {
	out := make([]string, 0, len(points))
	for _, p := range points {
		out = append(out, p.Address)
	}
	return out
}

func TestOptimizeRouteEmptyAndSingle(t *testing.T) {
	if got := OptimizeRoute(nil); len(got) != 0 {
		t.Fatalf("empty route: expected no points, got %d", len(got))
	}

	single := []domain.RoutePoint{point("A", 1, 2)}
	got := OptimizeRoute(single)
	if len(got) != 1 || got[0].Address != "A" {
		t.Fatalf("single-point route should be unchanged, got %v", addresses(got))
	}
}

func TestOptimizeRouteNearestNeighborOrder(t *testing.T) {
	// From A, nearest-neighbor picks B (~85km) before D (~170km) before C (~850km).
	route := []domain.RoutePoint{
		point("A", 0, 0),
		point("B", 0, 1),
		point("C", 0, 10),
		point("D", 0, 2),
	}

	got := addresses(OptimizeRoute(route))
	want := []string{"A", "B", "D", "C"}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("optimized order = %v, want %v", got, want)
		}
	}
}

func TestOptimizeRouteFirstPointFixed(t *testing.T) {
	// C is far from everything; it still seeds the route because the first
	// input point is never re-selected.
	route := []domain.RoutePoint{
		point("C", 0, 10),
		point("A", 0, 0),
		point("B", 0, 1),
	}

	got := OptimizeRoute(route)
	if got[0].Address != "C" {
		t.Fatalf("first point must stay fixed, got %v", addresses(got))
	}
}

func TestOptimizeRouteTieBreakInputOrder(t *testing.T) {
	// B and C are equidistant from A; B wins because it appears earlier in
	// the input.
	route := []domain.RoutePoint{
		point("A", 0, 0),
		point("B", 1, 0),
		point("C", -1, 0),
	}

	got := addresses(OptimizeRoute(route))
	want := []string{"A", "B", "C"}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("optimized order = %v, want %v", got, want)
		}
	}
}

func TestOptimizeRouteIsPermutation(t *testing.T) {
	route := []domain.RoutePoint{
		point("A", 41.38, 2.17),
		point("B", 41.40, 2.15),
		point("C", 41.35, 2.10),
		point("D", 41.42, 2.20),
		point("E", 41.39, 2.12),
	}

	got := OptimizeRoute(route)
	if len(got) != len(route) {
		t.Fatalf("expected %d points, got %d", len(route), len(got))
	}

	in := addresses(route)
	out := addresses(got)
	sort.Strings(in)
	sort.Strings(out)
	for i := range in {
		if in[i] != out[i] {
			t.Fatalf("output is not a permutation of input: %v vs %v", in, out)
		}
	}
}

func TestEstimateRouteDurationZeroDistance(t *testing.T) {
	// Three coincident points: only the 15-minute service time per point counts.
	route := []domain.RoutePoint{
		point("A", 10, 10),
		point("B", 10, 10),
		point("C", 10, 10),
	}

	if got := EstimateRouteDuration(route); got != 45 {
		t.Fatalf("duration = %v, want 45", got)
	}
}

func TestEstimateRouteDurationWithTravel(t *testing.T) {
	// One degree of latitude is exactly 111 km under the planar
	// approximation: 2*15 + 111*5 = 585 minutes.
	route := []domain.RoutePoint{
		point("A", 0, 0),
		point("B", 1, 0),
	}

	if got := EstimateRouteDuration(route); got != 585 {
		t.Fatalf("duration = %v, want 585", got)
	}
}

func TestEstimateRouteDurationEmpty(t *testing.T) {
	if got := EstimateRouteDuration(nil); got != 0 {
		t.Fatalf("duration = %v, want 0", got)
	}
}
