package domain

// CompanyHoliday is a dated holiday that applies to every member in every
// region, unlike Region.Holidays which is a flat count.
type CompanyHoliday struct {
	Date string // ISO YYYY-MM-DD
	Name string
}
