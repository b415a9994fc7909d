package authoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSelectionIsFirstEight(t *testing.T) {
	s := NewColumnSet()
	want := make([]string, 0, defaultColumnCount)
	for _, col := range Columns[:defaultColumnCount] {
		want = append(want, col.Field)
	}
	assert.Equal(t, want, s.Selected())
}

func TestCertifiedOptions(t *testing.T) {
	for _, col := range Columns {
		if col.Field == "certified" {
			assert.Equal(t, []string{"Yes", "No", "In Progress", "Digital X to populate"}, col.Options)
			return
		}
	}
	t.Fatal("certified column missing")
}

func TestToggleAddsAndRemoves(t *testing.T) {
	s := NewColumnSet()
	require.NoError(t, s.Toggle("tags"))
	assert.Contains(t, s.Selected(), "tags")

	require.NoError(t, s.Toggle("tags"))
	assert.NotContains(t, s.Selected(), "tags")
}

func TestToggleUnknownColumn(t *testing.T) {
	s := NewColumnSet()
	assert.ErrorIs(t, s.Toggle("bogus"), ErrUnknownColumn)
}

func TestTogglingAwayLastColumnRestoresFloor(t *testing.T) {
	s := NewColumnSet()
	require.NoError(t, s.Replace([]string{"description"}))
	require.NoError(t, s.Toggle("description"))
	assert.Equal(t, []string{"id", "name"}, s.Selected())
}

func TestClearAllKeepsFloor(t *testing.T) {
	s := NewColumnSet()
	s.ClearAll()
	assert.Equal(t, []string{"id", "name"}, s.Selected())
}

func TestSelectAll(t *testing.T) {
	s := NewColumnSet()
	s.SelectAll()
	assert.Len(t, s.Selected(), len(Columns))
}

func TestReplace(t *testing.T) {
	s := NewColumnSet()
	require.NoError(t, s.Replace([]string{"tags", "id", "domain"}))
	// registry order, not request order
	assert.Equal(t, []string{"id", "domain", "tags"}, s.Selected())

	assert.ErrorIs(t, s.Replace([]string{"id", "bogus"}), ErrUnknownColumn)

	require.NoError(t, s.Replace(nil))
	assert.Equal(t, []string{"id", "name"}, s.Selected())
}
