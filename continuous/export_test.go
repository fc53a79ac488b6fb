package continuous

// Spread exposes the per-dimension sampling deviation for tests.
func Spread(arc *Archive, guide, dim int, xi, lower, upper float64) float64 {
	var diffs []float64
	return spread(arc, guide, dim, xi, upper-lower, &diffs)
}

// Guide exposes guide selection over arc's rank weights for a fixed draw u.
func Guide(arc *Archive, q, u float64) int {
	return pickGuide(guideWheel(RankWeights(arc.Len(), q)), u, arc.Len())
}
