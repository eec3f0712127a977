package branch

import (
	"math"
	"sort"
)

// Distance is the square root of the summed absolute coordinate deltas. It is a cheap
// planar proxy, not a great-circle distance; clients depend on its exact values.
func Distance(a Address, origin Coordinate) float64 {
	return math.Sqrt(math.Abs(a.Latitude-origin.Latitude) + math.Abs(a.Longitude-origin.Longitude))
}

// Rank orders branches nearest first. Ties keep input order. Branches with no loaded
// address cannot be scored and are returned in skipped.
func Rank(branches []Branch, origin Coordinate) (ranked []RankedBranch, skipped []int64) {
	ranked = make([]RankedBranch, 0, len(branches))
	for _, b := range branches {
		if b.Address == nil {
			skipped = append(skipped, b.ID)
			continue
		}
		ranked = append(ranked, RankedBranch{
			Branch:   b,
			Distance: Distance(*b.Address, origin),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})
	return ranked, skipped
}
