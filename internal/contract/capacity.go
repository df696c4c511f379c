package contract

import "github.com/szabadkai/quarterback/internal/capacity"

// CapacityResponse pairs the calculator's output with the committed-days
// view derived from scheduled projects in the quarter.
type CapacityResponse struct {
	Quarter string
	Result  capacity.Result

	// CommittedDays is the sum of scheduled working days across projects
	// overlapping the quarter.
	CommittedDays  int
	UtilizationPct float64
	Status         capacity.UtilizationStatus
}
