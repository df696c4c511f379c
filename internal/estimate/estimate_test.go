package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/szabadkai/quarterback/internal/domain"
)

func TestICEScore(t *testing.T) {
	tests := []struct {
		name                       string
		impact, confidence, effort int
		want                       float64
	}{
		{"typical", 9, 9, 5, 16.2},
		{"balanced", 5, 5, 5, 5.0},
		{"max priority", 10, 10, 1, 100.0},
		{"rounds to one decimal", 7, 8, 3, 18.7},
		{"inputs clamped low", 0, -5, 0, 1.0},
		{"inputs clamped high", 15, 20, 100, 10.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ICEScore(tt.impact, tt.confidence, tt.effort))
		})
	}
}

func TestStoryPoints_AnchorsAtFullConfidence(t *testing.T) {
	// At confidence 10 the multiplier is 1.0 and anchors map exactly.
	for effort, want := range map[int]int{1: 1, 2: 2, 3: 3, 4: 5, 6: 8, 8: 13, 9: 20, 10: 40} {
		assert.Equal(t, want, StoryPoints(effort, 10, 0), "effort %d", effort)
	}
}

func TestStoryPoints_Interpolation(t *testing.T) {
	// Effort 5 sits halfway between the 4->5 and 6->8 anchors: 6.5 points.
	assert.Equal(t, 7, StoryPoints(5, 10, 0))
	// Effort 7 sits halfway between 8 and 13: 10.5 -> 11 (round half up).
	assert.Equal(t, 11, StoryPoints(7, 10, 0))
}

func TestStoryPoints_ConfidenceInflation(t *testing.T) {
	// Confidence 5 inflates by 25%: 6.5 * 1.25 = 8.125 -> 8.
	assert.Equal(t, 8, StoryPoints(5, 5, 0))
	// Confidence 1 inflates by 45%: 40 * 1.45 = 58.
	assert.Equal(t, 58, StoryPoints(10, 1, 0))
}

func TestStoryPoints_ExplicitWins(t *testing.T) {
	assert.Equal(t, 21, StoryPoints(5, 5, 21))
	// Non-positive explicit values are ignored.
	assert.Equal(t, 8, StoryPoints(5, 5, -1))
}

func TestNormalizeMandays(t *testing.T) {
	assert.Nil(t, NormalizeMandays(nil))

	zero, neg, ok, huge := 0, -4, 30, 5000
	assert.Nil(t, NormalizeMandays(&zero))
	assert.Nil(t, NormalizeMandays(&neg))
	assert.Equal(t, 30, *NormalizeMandays(&ok))
	assert.Equal(t, MaxMandays, *NormalizeMandays(&huge))
}

func TestDurationDays(t *testing.T) {
	t.Run("explicit mandays win over story points", func(t *testing.T) {
		mandays := 25
		p := &domain.Project{StoryPoints: 5, MandayEstimate: &mandays}
		assert.Equal(t, 25, DurationDays(p, Options{}))
	})

	t.Run("story points convert at the ratio", func(t *testing.T) {
		p := &domain.Project{StoryPoints: 8}
		assert.Equal(t, 8, DurationDays(p, Options{}))
		assert.Equal(t, 12, DurationDays(p, Options{StoryPointDayRatio: 1.5}))
	})

	t.Run("derived durations floor at the minimum", func(t *testing.T) {
		p := &domain.Project{StoryPoints: 1}
		assert.Equal(t, 3, DurationDays(p, Options{}))
		assert.Equal(t, 5, DurationDays(p, Options{MinScheduleDays: 5}))
	})

	t.Run("points derive from effort when unset", func(t *testing.T) {
		p := &domain.Project{ICEEffort: 5, ICEConfidence: 10}
		assert.Equal(t, 7, DurationDays(p, Options{}))
	})

	t.Run("nil project falls back to the default", func(t *testing.T) {
		assert.Equal(t, DefaultBacklogDays, DurationDays(nil, Options{}))
	})
}
