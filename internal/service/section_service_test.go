package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
)

func TestSectionService_MissingSectionIsEmpty(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	hero, err := f.sections.Hero(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Hero{}, *hero)

	contact, err := f.sections.Contact(ctx)
	require.NoError(t, err)
	assert.NotNil(t, contact.Socials, "пустой список, а не null")
}

func TestSectionService_UpdateHeroRoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.sections.UpdateHero(ctx, models.Hero{Title: "Игнат", Image: "/uploads/me.png"})
	require.NoError(t, err)

	hero, err := f.sections.Hero(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Игнат", hero.Title)
	assert.Equal(t, "/uploads/me.png", hero.Image)
}

func TestSectionService_Validation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.sections.UpdateHero(ctx, models.Hero{})
	assert.True(t, apperror.IsValidation(err), "hero без заголовка")

	_, err = f.sections.UpdateContact(ctx, models.Contact{Email: "not-an-email"})
	assert.True(t, apperror.IsValidation(err))

	_, err = f.sections.UpdateContact(ctx, models.Contact{
		Email:   "me@example.com",
		Socials: []models.Link{{Label: "GitHub", URL: "ftp://github.com"}},
	})
	assert.True(t, apperror.IsValidation(err))

	_, err = f.sections.UpdateAbout(ctx, models.About{Title: "Обо мне", Stats: []models.Stat{{Label: "Лет опыта"}}})
	assert.True(t, apperror.IsValidation(err))

	assert.Empty(t, f.sectionRepo.sections, "невалидные данные не сохраняются")
}

func TestSectionService_ContactAcceptsMailtoLinks(t *testing.T) {
	f := newFixture()

	contact, err := f.sections.UpdateContact(context.Background(), models.Contact{
		Email:   " Me@Example.com ",
		Socials: []models.Link{{Label: "Почта", URL: "mailto:me@example.com"}, {Label: "GitHub", URL: "https://github.com/me"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", contact.Email)
}

func TestSectionService_Headers(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.sections.Header(ctx, models.SectionKey("hero"))
	assert.True(t, apperror.IsNotFound(err))

	_, err = f.sections.UpdateHeader(ctx, models.SectionProjects, models.SectionHeader{Title: "Проекты"})
	require.NoError(t, err)

	header, err := f.sections.Header(ctx, models.SectionProjects)
	require.NoError(t, err)
	assert.Equal(t, "Проекты", header.Title)

	other, err := f.sections.Header(ctx, models.SectionSkills)
	require.NoError(t, err)
	assert.Empty(t, other.Title)
}
