package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampedFocus(t *testing.T) {
	var missing *Role
	assert.EqualValues(t, 100, missing.ClampedFocus())

	// Explicit zero is kept, not promoted to full-time.
	assert.EqualValues(t, 0, (&Role{Name: "Advisor", Focus: 0}).ClampedFocus())

	assert.EqualValues(t, 0, (&Role{Focus: -25}).ClampedFocus())
	assert.EqualValues(t, 200, (&Role{Focus: 350}).ClampedFocus())
	assert.EqualValues(t, 60, (&Role{Name: "Engineering Manager", Focus: 60}).ClampedFocus())
}
