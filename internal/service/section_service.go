package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// SectionRepository хранит singleton-разделы как JSON.
type SectionRepository interface {
	Get(ctx context.Context, key models.SectionKey) (json.RawMessage, bool, error)
	Upsert(ctx context.Context, key models.SectionKey, content json.RawMessage) error
}

// SectionService читает и обновляет singleton-разделы сайта.
// Ещё не сохранённый раздел отдаётся пустым, а не 404.
type SectionService struct {
	repo SectionRepository
}

func NewSectionService(repo SectionRepository) *SectionService {
	return &SectionService{repo: repo}
}

func (s *SectionService) Hero(ctx context.Context) (*models.Hero, error) {
	return loadSection[models.Hero](ctx, s.repo, models.SectionHero)
}

func (s *SectionService) UpdateHero(ctx context.Context, hero models.Hero) (*models.Hero, error) {
	if err := validation.ValidateRequired("заголовок", hero.Title, validation.MaxTitleLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateLength("описание", hero.Description, 0, validation.MaxLongTextLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateImageRef("изображение", hero.Image); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	return saveSection(ctx, s.repo, models.SectionHero, &hero)
}

func (s *SectionService) About(ctx context.Context) (*models.About, error) {
	about, err := loadSection[models.About](ctx, s.repo, models.SectionAbout)
	if err != nil {
		return nil, err
	}
	if about.Stats == nil {
		about.Stats = []models.Stat{}
	}
	return about, nil
}

func (s *SectionService) UpdateAbout(ctx context.Context, about models.About) (*models.About, error) {
	if err := validation.ValidateRequired("заголовок", about.Title, validation.MaxTitleLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateLength("текст", about.Bio, 0, validation.MaxLongTextLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateImageRef("изображение", about.Image); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateImageRef("ссылка на резюме", about.ResumeURL); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	for _, stat := range about.Stats {
		if strings.TrimSpace(stat.Label) == "" || strings.TrimSpace(stat.Value) == "" {
			return nil, apperror.Validation("у показателя должны быть подпись и значение")
		}
	}
	if about.Stats == nil {
		about.Stats = []models.Stat{}
	}
	return saveSection(ctx, s.repo, models.SectionAbout, &about)
}

func (s *SectionService) Contact(ctx context.Context) (*models.Contact, error) {
	contact, err := loadSection[models.Contact](ctx, s.repo, models.SectionContact)
	if err != nil {
		return nil, err
	}
	if contact.Socials == nil {
		contact.Socials = []models.Link{}
	}
	return contact, nil
}

func (s *SectionService) UpdateContact(ctx context.Context, contact models.Contact) (*models.Contact, error) {
	if err := validation.ValidateEmail(contact.Email); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	contact.Email = strings.ToLower(strings.TrimSpace(contact.Email))
	if err := validateLinks(contact.Socials); err != nil {
		return nil, err
	}
	if contact.Socials == nil {
		contact.Socials = []models.Link{}
	}
	return saveSection(ctx, s.repo, models.SectionContact, &contact)
}

func (s *SectionService) Footer(ctx context.Context) (*models.Footer, error) {
	footer, err := loadSection[models.Footer](ctx, s.repo, models.SectionFooter)
	if err != nil {
		return nil, err
	}
	if footer.Links == nil {
		footer.Links = []models.Link{}
	}
	return footer, nil
}

func (s *SectionService) UpdateFooter(ctx context.Context, footer models.Footer) (*models.Footer, error) {
	if err := validation.ValidateLength("копирайт", footer.Copyright, 0, validation.MaxShortTextLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validateLinks(footer.Links); err != nil {
		return nil, err
	}
	if footer.Links == nil {
		footer.Links = []models.Link{}
	}
	return saveSection(ctx, s.repo, models.SectionFooter, &footer)
}

// Header возвращает заголовок списочного раздела (experience-section и т.п.).
func (s *SectionService) Header(ctx context.Context, key models.SectionKey) (*models.SectionHeader, error) {
	if !slices.Contains(models.HeaderSectionKeys, key) {
		return nil, apperror.NotFound("раздел %q не найден", key)
	}
	return loadSection[models.SectionHeader](ctx, s.repo, key)
}

func (s *SectionService) UpdateHeader(ctx context.Context, key models.SectionKey, header models.SectionHeader) (*models.SectionHeader, error) {
	if !slices.Contains(models.HeaderSectionKeys, key) {
		return nil, apperror.NotFound("раздел %q не найден", key)
	}
	if err := validation.ValidateRequired("заголовок", header.Title, validation.MaxTitleLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateLength("подзаголовок", header.Subtitle, 0, validation.MaxShortTextLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	return saveSection(ctx, s.repo, key, &header)
}

func validateLinks(links []models.Link) error {
	for _, link := range links {
		if strings.TrimSpace(link.Label) == "" {
			return apperror.Validation("у ссылки должна быть подпись")
		}
		target := strings.TrimSpace(link.URL)
		if strings.HasPrefix(target, "mailto:") || strings.HasPrefix(target, "tel:") {
			continue
		}
		if target == "" {
			return apperror.Validation("у ссылки %q не указан адрес", link.Label)
		}
		if err := validation.ValidateURL("ссылка", &target); err != nil {
			return apperror.Validation("%s", err.Error())
		}
	}
	return nil
}

func loadSection[T any](ctx context.Context, repo SectionRepository, key models.SectionKey) (*T, error) {
	var section T
	raw, found, err := repo.Get(ctx, key)
	if err != nil {
		return nil, storageError(err)
	}
	if !found {
		return &section, nil
	}
	if err := json.Unmarshal(raw, &section); err != nil {
		return nil, apperror.Internal(fmt.Errorf("section %s: %w", key, err))
	}
	return &section, nil
}

func saveSection[T any](ctx context.Context, repo SectionRepository, key models.SectionKey, section *T) (*T, error) {
	raw, err := json.Marshal(section)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("section %s: %w", key, err))
	}
	if err := repo.Upsert(ctx, key, raw); err != nil {
		return nil, storageError(err)
	}
	return section, nil
}
