package capacity

import "math"

// UtilizationStatus classifies a utilization percentage.
type UtilizationStatus string

const (
	StatusNone       UtilizationStatus = "none"
	StatusOver       UtilizationStatus = "over"
	StatusLow        UtilizationStatus = "low"
	StatusGood       UtilizationStatus = "good"
	StatusHigh       UtilizationStatus = "high"
	StatusAtCapacity UtilizationStatus = "at-capacity"
)

// Utilization returns committed/available as a rounded percentage.
// Two sentinel values carry the degenerate cases: +Inf when work is
// committed against zero (or negative) available capacity, NaN when both
// figures are zero and the ratio is undefined. Callers should classify via
// StatusFor rather than branching on the raw float.
func Utilization(committed, available float64) float64 {
	if available <= 0 {
		if committed > 0 {
			return math.Inf(1)
		}
		return math.NaN()
	}
	return math.Round(committed / available * 100)
}

// StatusFor maps a percentage (or sentinel) to its status band:
// <70 low, <90 good, <100 high, >=100 at-capacity; anything above 100 or
// +Inf is over, NaN is none.
func StatusFor(pct float64) UtilizationStatus {
	switch {
	case math.IsNaN(pct):
		return StatusNone
	case math.IsInf(pct, 1) || pct > 100:
		return StatusOver
	case pct < 70:
		return StatusLow
	case pct < 90:
		return StatusGood
	case pct < 100:
		return StatusHigh
	default:
		return StatusAtCapacity
	}
}
