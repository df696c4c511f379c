package domain

// Role carries the focus percentage: the share of working time available
// for project work. 100 = full-time individual contributor; values above
// 100 are accepted but represent overcommitment.
type Role struct {
	ID    string
	Name  string
	Focus float64
}

const (
	MinFocus = 10
	MaxFocus = 200
)

// ClampedFocus returns the focus percentage clamped to [0, MaxFocus].
// A missing role falls back to full-time (100); an explicit zero stays
// zero and callers doing division guard for it.
func (r *Role) ClampedFocus() float64 {
	if r == nil {
		return 100
	}
	if r.Focus < 0 {
		return 0
	}
	if r.Focus > MaxFocus {
		return MaxFocus
	}
	return r.Focus
}
