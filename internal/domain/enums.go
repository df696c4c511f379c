package domain

type ProjectStatus string

const (
	ProjectPlanned    ProjectStatus = "planned"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectAtRisk     ProjectStatus = "at_risk"
	ProjectBlocked    ProjectStatus = "blocked"
	ProjectCompleted  ProjectStatus = "completed"
)

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[string]bool{
	"planned": true, "in_progress": true, "at_risk": true,
	"blocked": true, "completed": true,
}

// PreferenceLevel expresses how much a team member wants to work on a
// given project type. Unknown strings normalize to PrefNeutral.
type PreferenceLevel string

const (
	PrefLoved     PreferenceLevel = "loved"
	PrefPreferred PreferenceLevel = "preferred"
	PrefNeutral   PreferenceLevel = "neutral"
	PrefAvoided   PreferenceLevel = "avoided"
	PrefDisliked  PreferenceLevel = "disliked"
)

// ParsePreferenceLevel normalizes a stored preference string, falling back
// to neutral for anything unrecognized.
func ParsePreferenceLevel(s string) PreferenceLevel {
	switch PreferenceLevel(s) {
	case PrefLoved, PrefPreferred, PrefAvoided, PrefDisliked:
		return PreferenceLevel(s)
	default:
		return PrefNeutral
	}
}

// ValidProjectTypes is the canonical set of accepted project type tags.
// Free-form tags are tolerated at the edges; unknown tags behave as neutral
// for preference scoring.
var ValidProjectTypes = map[string]bool{
	"feature": true, "bug-fix": true, "tech-debt": true,
	"infrastructure": true, "research": true, "security": true,
	"performance": true, "documentation": true, "testing": true,
	"design": true, "support": true, "ops": true,
	"maintenance": true, "integration": true, "migration": true,
}

const DefaultProjectType = "feature"
