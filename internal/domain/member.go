package domain

// TeamMember belongs to exactly one region and one role. PTODates holds
// ISO calendar dates (YYYY-MM-DD); duplicates are harmless. TypePreferences
// maps project type tags to a preference level, neutral when absent.
type TeamMember struct {
	ID              string
	Name            string
	RegionID        string
	RoleID          string
	PTODates        []string
	TypePreferences map[string]PreferenceLevel
}

// PreferenceFor returns the member's stated preference for a project type,
// defaulting to neutral for unknown tags or a nil map.
func (m *TeamMember) PreferenceFor(projectType string) PreferenceLevel {
	if m == nil || m.TypePreferences == nil {
		return PrefNeutral
	}
	if level, ok := m.TypePreferences[projectType]; ok {
		return level
	}
	return PrefNeutral
}
