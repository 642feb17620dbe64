package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

func skillNames[T any](items []T, name func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, name(it))
	}
	return out
}

func TestSiteService_HidesSelectedSkillOfInactiveCategory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	file, err := ParseSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)
	file.AboutSkills = []string{"Go", "Docker"}
	_, err = newSeedService(f).Apply(ctx, file)
	require.NoError(t, err)

	// в админке Docker выбран, хотя его категория cloud-devops выключена
	selected, err := f.about.Selected(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go:1", "Docker:2"}, orderOf(selected))

	site := NewSiteService(f.sections, f.about, f.categories, f.skills, f.projects, f.experiences, f.testimonials)

	loaded, err := site.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go:1"}, orderOf(loaded.AboutSkills))

	about, err := site.VisibleAboutSkills(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go:1"}, orderOf(about))

	skills, err := site.VisibleSkills(ctx)
	require.NoError(t, err)
	names := skillNames(skills, func(s models.Skill) string { return s.Name })
	assert.ElementsMatch(t, []string{"Go", "SQL"}, names)
	assert.NotContains(t, names, "Docker")
}
