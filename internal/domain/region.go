package domain

// Region groups team members by geography for PTO allowances and flat
// holiday counts. The holiday count here is a numeric deduction, distinct
// from the dated CompanyHoliday calendar.
type Region struct {
	ID       string
	Name     string
	PTODays  float64
	Holidays float64
}
