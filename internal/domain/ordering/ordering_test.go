package ordering

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(ids ...int64) []Entry {
	out := make([]Entry, len(ids))
	for i, id := range ids {
		out[i] = Entry{ItemID: id, DisplayOrder: i + 1}
	}
	return out
}

func TestAppend_AddsAtEnd(t *testing.T) {
	var list []Entry
	var err error
	for _, id := range []int64{1, 2, 3} {
		list, err = Append(list, id)
		require.NoError(t, err)
	}

	if diff := cmp.Diff(entries(1, 2, 3), list); diff != "" {
		t.Fatalf("неожиданный порядок (-want +got):\n%s", diff)
	}
	assert.True(t, IsContiguous(list))
}

func TestAppend_RejectsDuplicate(t *testing.T) {
	_, err := Append(entries(1, 2), 2)
	assert.ErrorIs(t, err, ErrDuplicateItem)
}

func TestAppend_RepairsGaps(t *testing.T) {
	list, err := Append([]Entry{{ItemID: 7, DisplayOrder: 4}, {ItemID: 5, DisplayOrder: 2}}, 9)
	require.NoError(t, err)

	if diff := cmp.Diff(entries(5, 7, 9), list); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestRemove_CompactsOrder(t *testing.T) {
	list, removed := Remove(entries(2, 1, 3), 1)

	assert.True(t, removed)
	if diff := cmp.Diff(entries(2, 3), list); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestRemove_MissingIsNoop(t *testing.T) {
	before := entries(1, 2, 3)
	list, removed := Remove(before, 42)

	assert.False(t, removed)
	assert.Empty(t, cmp.Diff(before, list))
}

func TestMove_SwapsNeighbours(t *testing.T) {
	list, moved, err := Move(entries(1, 2, 3), 2, Up)
	require.NoError(t, err)

	assert.True(t, moved)
	assert.Empty(t, cmp.Diff(entries(2, 1, 3), list))

	list, moved, err = Move(list, 2, Down)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Empty(t, cmp.Diff(entries(1, 2, 3), list))
}

func TestMove_BoundaryIsNoop(t *testing.T) {
	start := entries(1, 2, 3)

	list, moved, err := Move(start, 1, Up)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Empty(t, cmp.Diff(start, list))

	list, moved, err = Move(start, 3, Down)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Empty(t, cmp.Diff(start, list))
}

func TestMove_Errors(t *testing.T) {
	_, _, err := Move(entries(1), 5, Up)
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, _, err = Move(entries(1), 1, Direction("left"))
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection(" UP ")
	require.NoError(t, err)
	assert.Equal(t, Up, d)

	_, err = ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestNormalize(t *testing.T) {
	current := entries(1, 2, 3)

	got, err := Normalize(current, []Entry{
		{ItemID: 3, DisplayOrder: 10},
		{ItemID: 1, DisplayOrder: 20},
		{ItemID: 2, DisplayOrder: 5},
	})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(entries(2, 3, 1), got))

	_, err = Normalize(current, entries(1, 2))
	assert.ErrorIs(t, err, ErrSetMismatch)

	_, err = Normalize(current, []Entry{{1, 1}, {1, 2}, {3, 3}})
	assert.ErrorIs(t, err, ErrDuplicateItem)

	_, err = Normalize(current, []Entry{{1, 1}, {2, 2}, {4, 3}})
	assert.ErrorIs(t, err, ErrSetMismatch)

	_, err = Normalize(current, []Entry{{1, 0}, {2, 2}, {3, 3}})
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestIsContiguous(t *testing.T) {
	assert.True(t, IsContiguous(nil))
	assert.True(t, IsContiguous([]Entry{{ItemID: 4, DisplayOrder: 2}, {ItemID: 9, DisplayOrder: 1}}))
	assert.False(t, IsContiguous([]Entry{{ItemID: 4, DisplayOrder: 1}, {ItemID: 9, DisplayOrder: 3}}))
	assert.False(t, IsContiguous([]Entry{{ItemID: 4, DisplayOrder: 1}, {ItemID: 9, DisplayOrder: 1}}))
}
