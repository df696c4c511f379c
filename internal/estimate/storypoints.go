package estimate

import "math"

// Fibonacci-flavored anchor table mapping effort level to story points.
// Effort values between anchors interpolate linearly.
var anchors = []struct {
	effort int
	points float64
}{
	{1, 1}, {2, 2}, {3, 3}, {4, 5}, {6, 8}, {8, 13}, {9, 20}, {10, 40},
}

// confidenceMultiplier inflates an estimate by up to 50% as confidence
// drops: 1.0 at confidence 10, 1.45 at confidence 1.
func confidenceMultiplier(confidence int) float64 {
	deficit := float64(10-ClampICE(confidence)) / 10
	return 1 + deficit*0.5
}

// StoryPoints derives a story-point estimate from effort and confidence.
// An explicit positive estimate wins; otherwise the effort level is
// interpolated across the anchor table and scaled by the confidence
// multiplier. The result is rounded and floors at 1.
func StoryPoints(effort, confidence, existing int) int {
	if existing > 0 {
		return existing
	}
	safeEffort := ClampICE(effort)

	for i := 0; i < len(anchors)-1; i++ {
		lo, hi := anchors[i], anchors[i+1]
		if safeEffort >= lo.effort && safeEffort <= hi.effort {
			span := float64(hi.effort - lo.effort)
			ratio := float64(safeEffort-lo.effort) / span
			interpolated := lo.points + ratio*(hi.points-lo.points)
			adjusted := interpolated * confidenceMultiplier(confidence)
			return int(math.Max(1, math.Round(adjusted)))
		}
	}
	adjusted := anchors[len(anchors)-1].points * confidenceMultiplier(confidence)
	return int(math.Max(1, math.Round(adjusted)))
}
