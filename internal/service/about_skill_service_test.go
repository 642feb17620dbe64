package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-backend/internal/domain/ordering"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
)

func selectABC(t *testing.T, f *fixture) (a, b, c int64) {
	t.Helper()
	ctx := context.Background()
	a = f.catalog.addSkill("A")
	b = f.catalog.addSkill("B")
	c = f.catalog.addSkill("C")
	for _, id := range []int64{a, b, c} {
		_, err := f.about.Select(ctx, id)
		require.NoError(t, err)
	}
	return a, b, c
}

func TestAboutSkillService_SelectAppendsInOrder(t *testing.T) {
	f := newFixture()
	selectABC(t, f)

	selected, err := f.about.Selected(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"A:1", "B:2", "C:3"}, orderOf(selected)); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
}

func TestAboutSkillService_MoveUpSwapsNeighbours(t *testing.T) {
	f := newFixture()
	_, b, _ := selectABC(t, f)

	selected, err := f.about.Move(context.Background(), b, "up")
	require.NoError(t, err)
	assert.Equal(t, []string{"B:1", "A:2", "C:3"}, orderOf(selected))
}

func TestAboutSkillService_DeselectCompacts(t *testing.T) {
	f := newFixture()
	a, _, _ := selectABC(t, f)

	selected, err := f.about.Deselect(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, []string{"B:1", "C:2"}, orderOf(selected))
}

func TestAboutSkillService_DeselectIsIdempotent(t *testing.T) {
	f := newFixture()
	a, _, _ := selectABC(t, f)
	ctx := context.Background()

	first, err := f.about.Deselect(ctx, a)
	require.NoError(t, err)
	second, err := f.about.Deselect(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, orderOf(first), orderOf(second))

	other := f.catalog.addSkill("D")
	third, err := f.about.Deselect(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, orderOf(first), orderOf(third))
}

func TestAboutSkillService_SelectErrors(t *testing.T) {
	f := newFixture()
	a, _, _ := selectABC(t, f)
	ctx := context.Background()

	_, err := f.about.Select(ctx, a)
	assert.True(t, apperror.IsConflict(err), "повторный выбор: %v", err)

	_, err = f.about.Select(ctx, 999)
	assert.True(t, apperror.IsNotFound(err), "неизвестный навык: %v", err)

	_, err = f.about.Select(ctx, 0)
	assert.True(t, apperror.IsValidation(err))

	_, err = f.about.Deselect(ctx, -1)
	assert.True(t, apperror.IsValidation(err))

	selected, err := f.about.Selected(ctx)
	require.NoError(t, err)
	assert.Len(t, selected, 3)
}

func TestAboutSkillService_MoveAtBoundaryIsNoop(t *testing.T) {
	f := newFixture()
	a, _, c := selectABC(t, f)
	ctx := context.Background()

	selected, err := f.about.Move(ctx, a, "up")
	require.NoError(t, err)
	assert.Equal(t, []string{"A:1", "B:2", "C:3"}, orderOf(selected))

	selected, err = f.about.Move(ctx, c, "down")
	require.NoError(t, err)
	assert.Equal(t, []string{"A:1", "B:2", "C:3"}, orderOf(selected))

	assert.Zero(t, f.catalog.replaceCalls, "на границе запись не нужна")
}

func TestAboutSkillService_MoveErrors(t *testing.T) {
	f := newFixture()
	a, _, _ := selectABC(t, f)
	ctx := context.Background()

	_, err := f.about.Move(ctx, a, "left")
	assert.True(t, apperror.IsValidation(err))

	other := f.catalog.addSkill("D")
	_, err = f.about.Move(ctx, other, "down")
	assert.True(t, apperror.IsNotFound(err))
}

func TestAboutSkillService_ReplaceOrder(t *testing.T) {
	f := newFixture()
	a, b, c := selectABC(t, f)
	ctx := context.Background()

	selected, err := f.about.ReplaceOrder(ctx, []SkillPlacement{
		{SkillID: c, DisplayOrder: 10},
		{SkillID: a, DisplayOrder: 20},
		{SkillID: b, DisplayOrder: 30},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"C:1", "A:2", "B:3"}, orderOf(selected))
	assert.Equal(t, 1, f.catalog.replaceCalls)
}

func TestAboutSkillService_ReplaceOrderRejectsMismatch(t *testing.T) {
	f := newFixture()
	a, b, c := selectABC(t, f)
	d := f.catalog.addSkill("D")
	ctx := context.Background()

	cases := map[string][]SkillPlacement{
		"пропущен элемент": {{SkillID: a, DisplayOrder: 1}, {SkillID: b, DisplayOrder: 2}},
		"лишний элемент":   {{SkillID: a, DisplayOrder: 1}, {SkillID: b, DisplayOrder: 2}, {SkillID: c, DisplayOrder: 3}, {SkillID: d, DisplayOrder: 4}},
		"дубликат":         {{SkillID: a, DisplayOrder: 1}, {SkillID: a, DisplayOrder: 2}, {SkillID: c, DisplayOrder: 3}},
		"пустой":           {},
	}
	for name, placements := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.about.ReplaceOrder(ctx, placements)
			assert.True(t, apperror.IsValidation(err), "got %v", err)
		})
	}
	assert.Zero(t, f.catalog.replaceCalls)
}

func TestAboutSkillService_DeletingSelectedSkillCompactsSelection(t *testing.T) {
	f := newFixture()
	_, b, _ := selectABC(t, f)
	ctx := context.Background()

	require.NoError(t, f.skills.Delete(ctx, b))

	selected, err := f.about.Selected(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A:1", "C:2"}, orderOf(selected))
}

func TestAboutSkillService_Overview(t *testing.T) {
	f := newFixture()
	a := f.catalog.addSkill("A")
	f.catalog.addSkill("B")
	ctx := context.Background()

	_, err := f.about.Select(ctx, a)
	require.NoError(t, err)

	overview, err := f.about.Overview(ctx)
	require.NoError(t, err)
	assert.Len(t, overview.AllSkills, 2)
	require.Len(t, overview.SelectedSkills, 1)
	assert.Equal(t, a, overview.SelectedSkills[0].SkillID)
	assert.NotZero(t, overview.SelectedSkills[0].AboutSkillID)
}

// После любой последовательности операций порядок остаётся 1..n без дыр.
func TestAboutSkillService_SelectionStaysContiguous(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	ids := make([]int64, 8)
	for i := range ids {
		ids[i] = f.catalog.addSkill(string(rune('A' + i)))
	}

	for step := 0; step < 300; step++ {
		id := ids[rng.Intn(len(ids))]
		var err error
		switch rng.Intn(4) {
		case 0:
			_, err = f.about.Select(ctx, id)
			if apperror.IsConflict(err) {
				err = nil
			}
		case 1:
			_, err = f.about.Deselect(ctx, id)
		case 2:
			dir := "up"
			if rng.Intn(2) == 0 {
				dir = "down"
			}
			_, err = f.about.Move(ctx, id, dir)
			if apperror.IsNotFound(err) {
				err = nil
			}
		case 3:
			selected, listErr := f.about.Selected(ctx)
			require.NoError(t, listErr)
			rng.Shuffle(len(selected), func(i, j int) { selected[i], selected[j] = selected[j], selected[i] })
			placements := make([]SkillPlacement, len(selected))
			for i, s := range selected {
				placements[i] = SkillPlacement{SkillID: s.SkillID, DisplayOrder: (i + 1) * 10}
			}
			if len(placements) > 0 {
				_, err = f.about.ReplaceOrder(ctx, placements)
			}
		}
		require.NoError(t, err, "step %d", step)

		selected, err := f.about.Selected(ctx)
		require.NoError(t, err)
		require.True(t, ordering.IsContiguous(selectionEntries(selected)), "step %d: %v", step, orderOf(selected))
		assertUniqueSkills(t, selected)
	}
}

func assertUniqueSkills(t *testing.T, selected []models.SelectedSkill) {
	t.Helper()
	seen := make(map[int64]bool, len(selected))
	for _, s := range selected {
		require.False(t, seen[s.SkillID], "навык %d выбран дважды", s.SkillID)
		seen[s.SkillID] = true
	}
}
