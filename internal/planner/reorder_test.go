package planner

import (
	"sort"
	"testing"

	"github.com/dayekim/tripmate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(ids ...string) []domain.Place {
	out := make([]domain.Place, len(ids))
	for i, id := range ids {
		out[i] = domain.Place{ID: id, Date: "2025-07-01"}
	}
	return out
}

func ids(places []domain.Place) []string {
	out := make([]string, len(places))
	for i, p := range places {
		out[i] = p.ID
	}
	return out
}

func TestReorder_MoveDown(t *testing.T) {
	got := Reorder(day("a", "b", "c", "d"), 0, 2)
	assert.Equal(t, []string{"b", "c", "a", "d"}, ids(got))
}

func TestReorder_MoveUp(t *testing.T) {
	got := Reorder(day("a", "b", "c", "d"), 3, 1)
	assert.Equal(t, []string{"a", "d", "b", "c"}, ids(got))
}

func TestReorder_IsPermutation(t *testing.T) {
	original := day("a", "b", "c", "d", "e")
	for from := 0; from < 5; from++ {
		for to := 0; to < 5; to++ {
			got := Reorder(original, from, to)
			require.Len(t, got, 5)

			sorted := ids(got)
			sort.Strings(sorted)
			assert.Equal(t, []string{"a", "b", "c", "d", "e"}, sorted,
				"reorder(%d,%d) must preserve the identifier multiset", from, to)
		}
	}
	// The input itself is never mutated.
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(original))
}

func TestReorder_SameIndexIsNoOp(t *testing.T) {
	original := day("a", "b", "c")
	got := Reorder(original, 1, 1)
	assert.Equal(t, ids(original), ids(got))
}

func TestReorder_OutOfRangeIsNoOp(t *testing.T) {
	original := day("a", "b", "c")
	assert.Equal(t, ids(original), ids(Reorder(original, -1, 1)))
	assert.Equal(t, ids(original), ids(Reorder(original, 5, 1)))
	assert.Equal(t, ids(original), ids(Reorder(original, 0, 9)))
}

func TestMove_AcrossDays(t *testing.T) {
	src := day("a", "b", "c")
	dst := []domain.Place{{ID: "x", Date: "2025-07-02"}}

	newSrc, newDst, ok := Move(src, dst, 1, 1, "2025-07-02")
	require.True(t, ok)

	assert.Len(t, newSrc, 2)
	assert.Len(t, newDst, 2)
	assert.Equal(t, []string{"a", "c"}, ids(newSrc))
	assert.Equal(t, []string{"x", "b"}, ids(newDst))
	assert.Equal(t, "2025-07-02", newDst[1].Date, "moved place is re-stamped to the destination day")

	// Source slice untouched; original place keeps its old date.
	assert.Equal(t, "2025-07-01", src[1].Date)
}

func TestMove_IntoEmptyDay(t *testing.T) {
	newSrc, newDst, ok := Move(day("a"), nil, 0, 0, "2025-07-03")
	require.True(t, ok)
	assert.Empty(t, newSrc)
	require.Len(t, newDst, 1)
	assert.Equal(t, "2025-07-03", newDst[0].Date)
}

func TestMove_ClampsDestinationIndex(t *testing.T) {
	_, newDst, ok := Move(day("a"), day("x", "y"), 0, 99, "2025-07-01")
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y", "a"}, ids(newDst))
}

func TestMove_InvalidSourceIsNoOp(t *testing.T) {
	src, dst := day("a"), day("x")
	newSrc, newDst, ok := Move(src, dst, 3, 0, "2025-07-02")
	assert.False(t, ok)
	assert.Equal(t, ids(src), ids(newSrc))
	assert.Equal(t, ids(dst), ids(newDst))
}
