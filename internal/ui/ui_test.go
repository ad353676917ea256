package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemasync/internal/models"
)

func TestSelectorStartsFullySelected(t *testing.T) {
	m := NewTableSelector([]string{"trips", "destinations"})

	assert.Equal(t, []string{"trips", "destinations"}, m.SelectedTables())
}

func TestSelectorToggle(t *testing.T) {
	m := NewTableSelector([]string{"trips", "destinations"})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m, ok := updated.(Model)
	require.True(t, ok)

	assert.Equal(t, []string{"destinations"}, m.SelectedTables(), "space toggles the cursored table off")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	assert.Equal(t, []string{"trips", "destinations"}, m.SelectedTables())
}

func TestSelectorAcceptQuits(t *testing.T) {
	m := NewTableSelector([]string{"trips"})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "trips")
}

func TestRenderSummaryEmptyDiff(t *testing.T) {
	out := RenderSummary(models.DifferenceSet{}, []string{"schema-comparison-x.json"})

	assert.Contains(t, out, "No structural differences found")
	assert.Contains(t, out, "schema-comparison-x.json")
}

func TestRenderSummaryListsDrift(t *testing.T) {
	diff := models.DifferenceSet{
		MissingInB: []string{"destinations"},
		ExtraInB:   []string{"old_bookings"},
		TableDiffs: map[string]models.TableDiff{
			"trips": {MissingColumnsInB: []string{"budget"}},
		},
		MissingBucketsInB: []string{"trip-photos"},
	}

	out := RenderSummary(diff, nil)

	assert.Contains(t, out, "destinations")
	assert.Contains(t, out, "old_bookings")
	assert.Contains(t, out, "trips")
	assert.Contains(t, out, "budget")
	assert.Contains(t, out, "trip-photos")
	assert.NotContains(t, out, "No structural differences")
}

func TestRenderSummaryNoBucketsHint(t *testing.T) {
	out := RenderSummary(models.DifferenceSet{NoBucketsFound: true, MissingInB: []string{"trips"}}, nil)

	assert.Contains(t, out, "No buckets found in either environment")
}
