package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemo(t *testing.T) {
	memo, err := NewMemo(0)
	require.NoError(t, err)

	state := fixtureState()

	first := memo.UsageCounts(state, "l1")
	second := memo.UsageCounts(state, "l1")
	assert.Equal(t, first, second)
	assert.Equal(t, UsageCounts(state, "l1"), first)
	assert.Equal(t, 1, memo.Len())

	assert.Equal(t, StaffByLocation(state, "l1"), memo.StaffByLocation(state, "l1"))
	assert.Equal(t, RostersByDate(state, "2026-10-19", ""), memo.RostersByDate(state, "2026-10-19", ""))
	assert.Equal(t, 3, memo.Len())

	t.Run("should recompute for a new revision", func(t *testing.T) {
		next := state.Clone()
		next.Revision++
		next.Rosters = next.Rosters[:1]

		usage := memo.UsageCounts(next, "l1")

		assert.Equal(t, 2, usage.AreaCount("A1"))
		assert.Equal(t, 3, memo.UsageCounts(state, "l1").AreaCount("A1"))
	})
}
