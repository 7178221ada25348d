package tui

import (
	"testing"

	"github.com/MKhiriev/go-job-alerts/models"
	"github.com/stretchr/testify/assert"
)

func TestNewChoice(t *testing.T) {
	t.Run("known value is selected", func(t *testing.T) {
		c := newChoice(models.Frequencies, models.Frequencies[1])

		assert.Equal(t, models.Frequencies[1], c.value())
		assert.False(t, c.unknown())
		assert.NotContains(t, c.View(false), "unknown")
	})

	t.Run("empty value starts at the first option", func(t *testing.T) {
		c := newChoice(models.Frequencies, "")

		assert.Equal(t, models.Frequencies[0], c.value())
		assert.False(t, c.unknown())
	})

	t.Run("unknown value is kept and flagged", func(t *testing.T) {
		known := len(models.Seniorities)
		c := newChoice(models.Seniorities, models.Seniority("principal"))

		assert.Equal(t, models.Seniority("principal"), c.value())
		assert.True(t, c.unknown())
		assert.Contains(t, c.View(false), "principal")
		assert.Contains(t, c.View(false), "(unknown)")
		assert.Len(t, models.Seniorities, known, "shared option list must not grow")

		c.next()
		assert.Equal(t, models.Seniorities[0], c.value())
		assert.False(t, c.unknown())
		c.prev()
		assert.Equal(t, models.Seniority("principal"), c.value())
	})
}
