package domain

// PlanSettings is the single-row planner configuration.
type PlanSettings struct {
	CurrentQuarter     string
	NumEngineers       int
	PTOPerPerson       float64
	AdhocReservePct    float64
	BugReservePct      float64
	StoryPointDayRatio float64
	MinScheduleDays    int
}
