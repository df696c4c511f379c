package estimate

import "math"

// ClampICE clamps an ICE input (impact, confidence, or effort) to [1, 10].
func ClampICE(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

// ICEScore computes (impact x confidence) / effort with each input clamped
// to [1, 10], rounded to one decimal place.
func ICEScore(impact, confidence, effort int) float64 {
	score := float64(ClampICE(impact)*ClampICE(confidence)) / float64(ClampICE(effort))
	return math.Round(score*10) / 10
}
