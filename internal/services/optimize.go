package services

import "collection-route-service/internal/domain"

// Policy constants for duration estimation: fixed per-stop service time and
// travel time per kilometer. Not configurable.
const (
	serviceMinutesPerPoint = 15.0
	travelMinutesPerKm     = 5.0
)

// OptimizeRoute orders pickup points using a greedy nearest-neighbor pass.
//
// The algorithm minimizes immediate travel distance at each step. It does
// not attempt global route optimization (e.g., 2-opt or VRP solvers); the
// design prioritizes determinism and simplicity over optimality.
//
// The first input point seeds the route and is never re-selected for
// optimality. Selection uses strict less-than, so of two equidistant
// remaining points the one earlier in input order wins; this tie-break must
// stay stable for reproducible routes. Routes of length 0 or 1 are returned
// unchanged. Coordinates are assumed valid; upstream validation rejects
// malformed points before they reach the optimizer.
//
// O(n²) in point count, acceptable for routes of tens of stops.
func OptimizeRoute(points []domain.RoutePoint) []domain.RoutePoint {
	if len(points) <= 1 {
		return points
	}

	optimized := make([]domain.RoutePoint, 0, len(points))
	optimized = append(optimized, points[0])

	remaining := make([]domain.RoutePoint, len(points)-1)
	copy(remaining, points[1:])

	for len(remaining) > 0 {
		current := optimized[len(optimized)-1].Coordinates

		best := 0
		bestDistance := current.DistanceKm(remaining[0].Coordinates)

		// Select the next stop by minimum approximate distance (greedy step.)
		for i := 1; i < len(remaining); i++ {
			d := current.DistanceKm(remaining[i].Coordinates)
			if d < bestDistance {
				best = i
				bestDistance = d
			}
		}

		optimized = append(optimized, remaining[best])
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return optimized
}

// EstimateRouteDuration returns the estimated minutes to execute the route
// in its current order: per-stop service time plus travel time over the sum
// of consecutive-point approximate distances.
func EstimateRouteDuration(points []domain.RoutePoint) float64 {
	if len(points) == 0 {
		return 0
	}

	pathKm := 0.0
	for i := 1; i < len(points); i++ {
		pathKm += points[i-1].Coordinates.DistanceKm(points[i].Coordinates)
	}

	return float64(len(points))*serviceMinutesPerPoint + pathKm*travelMinutesPerKm
}
