package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// SeedFile — содержимое сайта в YAML для первичного наполнения.
type SeedFile struct {
	Hero         *models.Hero                               `yaml:"hero"`
	About        *models.About                              `yaml:"about"`
	Contact      *models.Contact                            `yaml:"contact"`
	Footer       *models.Footer                             `yaml:"footer"`
	Sections     map[models.SectionKey]models.SectionHeader `yaml:"sections"`
	Categories   []SeedCategory                             `yaml:"categories"`
	Skills       []SeedSkill                                `yaml:"skills"`
	AboutSkills  []string                                   `yaml:"aboutSkills"`
	Projects     []models.Project                           `yaml:"projects"`
	Experiences  []models.Experience                        `yaml:"experiences"`
	Testimonials []models.Testimonial                       `yaml:"testimonials"`
}

// SeedCategory — категория в seed-файле.
type SeedCategory struct {
	Name         string  `yaml:"name"`
	Slug         string  `yaml:"slug"`
	Description  *string `yaml:"description"`
	Icon         *string `yaml:"icon"`
	DisplayOrder int     `yaml:"displayOrder"`
	IsActive     *bool   `yaml:"isActive"`
}

// SeedSkill — навык в seed-файле; category — slug категории.
type SeedSkill struct {
	Name         string `yaml:"name"`
	Level        int    `yaml:"level"`
	Icon         string `yaml:"icon"`
	Category     string `yaml:"category"`
	DisplayOrder int    `yaml:"displayOrder"`
}

// SeedReport — сколько записей каждого вида создано или обновлено.
type SeedReport struct {
	Sections     int
	Categories   int
	Skills       int
	AboutSkills  int
	Projects     int
	Experiences  int
	Testimonials int
}

func (r SeedReport) String() string {
	return fmt.Sprintf("разделы: %d, категории: %d, навыки: %d, выбор «Обо мне»: %d, проекты: %d, опыт: %d, отзывы: %d",
		r.Sections, r.Categories, r.Skills, r.AboutSkills, r.Projects, r.Experiences, r.Testimonials)
}

// ParseSeed читает seed-файл. Неизвестные поля считаются ошибкой.
func ParseSeed(r io.Reader) (*SeedFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file SeedFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return &file, nil
		}
		return nil, fmt.Errorf("seed: не удалось разобрать YAML: %w", err)
	}
	return &file, nil
}

// SeedService наполняет сайт содержимым из SeedFile. Повторный запуск обновляет
// уже существующие записи: категории по slug, навыки по имени, проекты по slug.
type SeedService struct {
	sections     *SectionService
	categories   *CategoryService
	skills       *SkillService
	aboutSkills  *AboutSkillService
	projects     *ProjectService
	experiences  *ExperienceService
	testimonials *TestimonialService
}

func NewSeedService(
	sections *SectionService,
	categories *CategoryService,
	skills *SkillService,
	aboutSkills *AboutSkillService,
	projects *ProjectService,
	experiences *ExperienceService,
	testimonials *TestimonialService,
) *SeedService {
	return &SeedService{
		sections:     sections,
		categories:   categories,
		skills:       skills,
		aboutSkills:  aboutSkills,
		projects:     projects,
		experiences:  experiences,
		testimonials: testimonials,
	}
}

// Apply записывает содержимое seed-файла.
func (s *SeedService) Apply(ctx context.Context, file *SeedFile) (*SeedReport, error) {
	report := &SeedReport{}

	steps := []struct {
		name string
		fn   func(context.Context, *SeedFile, *SeedReport) error
	}{
		{"sections", s.seedSections},
		{"categories", s.seedCategories},
		{"skills", s.seedSkills},
		{"aboutSkills", s.seedAboutSkills},
		{"projects", s.seedProjects},
		{"experiences", s.seedExperiences},
		{"testimonials", s.seedTestimonials},
	}
	for _, step := range steps {
		if err := step.fn(ctx, file, report); err != nil {
			return report, fmt.Errorf("seed service: %s: %w", step.name, err)
		}
	}
	return report, nil
}

func (s *SeedService) seedSections(ctx context.Context, file *SeedFile, report *SeedReport) error {
	if file.Hero != nil {
		if _, err := s.sections.UpdateHero(ctx, *file.Hero); err != nil {
			return err
		}
		report.Sections++
	}
	if file.About != nil {
		if _, err := s.sections.UpdateAbout(ctx, *file.About); err != nil {
			return err
		}
		report.Sections++
	}
	if file.Contact != nil {
		if _, err := s.sections.UpdateContact(ctx, *file.Contact); err != nil {
			return err
		}
		report.Sections++
	}
	if file.Footer != nil {
		if _, err := s.sections.UpdateFooter(ctx, *file.Footer); err != nil {
			return err
		}
		report.Sections++
	}
	for _, key := range models.HeaderSectionKeys {
		header, ok := file.Sections[key]
		if !ok {
			continue
		}
		if _, err := s.sections.UpdateHeader(ctx, key, header); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		report.Sections++
	}
	return nil
}

func (s *SeedService) seedCategories(ctx context.Context, file *SeedFile, report *SeedReport) error {
	existing, err := s.categories.List(ctx, false)
	if err != nil {
		return err
	}
	bySlug := make(map[string]int64, len(existing))
	for _, c := range existing {
		bySlug[c.Slug] = c.ID
	}

	for _, c := range file.Categories {
		in := CategoryInput{
			Name:         c.Name,
			Slug:         c.Slug,
			Description:  c.Description,
			Icon:         c.Icon,
			DisplayOrder: c.DisplayOrder,
			IsActive:     c.IsActive,
		}
		slug := validation.Slugify(c.Slug)
		if strings.TrimSpace(c.Slug) == "" {
			slug = validation.Slugify(c.Name)
		}

		if id, ok := bySlug[slug]; ok {
			_, err = s.categories.Update(ctx, id, in)
		} else {
			var created *models.SkillCategory
			created, err = s.categories.Create(ctx, in)
			if err == nil {
				bySlug[created.Slug] = created.ID
			}
		}
		if err != nil {
			return fmt.Errorf("%q: %w", c.Name, err)
		}
		report.Categories++
	}
	return nil
}

func (s *SeedService) seedSkills(ctx context.Context, file *SeedFile, report *SeedReport) error {
	existing, err := s.skills.List(ctx)
	if err != nil {
		return err
	}
	byName := make(map[string]int64, len(existing))
	for _, sk := range existing {
		byName[strings.ToLower(sk.Name)] = sk.ID
	}

	for _, sk := range file.Skills {
		in := SkillInput{
			Name:         sk.Name,
			Level:        sk.Level,
			Icon:         sk.Icon,
			Category:     sk.Category,
			DisplayOrder: sk.DisplayOrder,
		}
		key := strings.ToLower(strings.TrimSpace(sk.Name))
		if id, ok := byName[key]; ok {
			_, err = s.skills.Update(ctx, id, in)
		} else {
			var created *models.Skill
			created, err = s.skills.Create(ctx, in)
			if err == nil {
				byName[key] = created.ID
			}
		}
		if err != nil {
			return fmt.Errorf("%q: %w", sk.Name, err)
		}
		report.Skills++
	}
	return nil
}

func (s *SeedService) seedAboutSkills(ctx context.Context, file *SeedFile, report *SeedReport) error {
	if len(file.AboutSkills) == 0 {
		return nil
	}
	skills, err := s.skills.List(ctx)
	if err != nil {
		return err
	}
	byName := make(map[string]int64, len(skills))
	for _, sk := range skills {
		byName[strings.ToLower(sk.Name)] = sk.ID
	}

	for _, name := range file.AboutSkills {
		id, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return apperror.Validation("навык %q не найден", name)
		}
		if _, err := s.aboutSkills.Select(ctx, id); err != nil {
			if apperror.IsConflict(err) {
				continue
			}
			return fmt.Errorf("%q: %w", name, err)
		}
		report.AboutSkills++
	}
	return nil
}

func (s *SeedService) seedProjects(ctx context.Context, file *SeedFile, report *SeedReport) error {
	for _, p := range file.Projects {
		slug := validation.Slugify(p.Slug)
		if strings.TrimSpace(p.Slug) == "" {
			slug = validation.Slugify(p.Title)
		}
		p.Slug = slug

		current, err := s.projects.GetBySlug(ctx, slug)
		switch {
		case err == nil:
			_, err = s.projects.Update(ctx, current.ID, p)
		case apperror.IsNotFound(err):
			_, err = s.projects.Create(ctx, p)
		}
		if err != nil {
			return fmt.Errorf("%q: %w", p.Title, err)
		}
		report.Projects++
	}
	return nil
}

func (s *SeedService) seedExperiences(ctx context.Context, file *SeedFile, report *SeedReport) error {
	existing, err := s.experiences.List(ctx)
	if err != nil {
		return err
	}
	key := func(e models.Experience) string {
		return strings.ToLower(e.Company) + "|" + strings.ToLower(e.Role) + "|" + e.StartDate.Format("2006-01-02")
	}
	byKey := make(map[string]int64, len(existing))
	for _, e := range existing {
		byKey[key(e)] = e.ID
	}

	for _, e := range file.Experiences {
		e.Company, e.Role = strings.TrimSpace(e.Company), strings.TrimSpace(e.Role)
		if id, ok := byKey[key(e)]; ok {
			_, err = s.experiences.Update(ctx, id, e)
		} else {
			_, err = s.experiences.Create(ctx, e)
		}
		if err != nil {
			return fmt.Errorf("%q: %w", e.Company, err)
		}
		report.Experiences++
	}
	return nil
}

func (s *SeedService) seedTestimonials(ctx context.Context, file *SeedFile, report *SeedReport) error {
	existing, err := s.testimonials.List(ctx)
	if err != nil {
		return err
	}
	key := func(t models.Testimonial) string {
		return strings.ToLower(strings.TrimSpace(t.Author)) + "|" + strings.TrimSpace(t.Quote)
	}
	byKey := make(map[string]int64, len(existing))
	for _, t := range existing {
		byKey[key(t)] = t.ID
	}

	for _, t := range file.Testimonials {
		if id, ok := byKey[key(t)]; ok {
			_, err = s.testimonials.Update(ctx, id, t)
		} else {
			_, err = s.testimonials.Create(ctx, t)
		}
		if err != nil {
			return fmt.Errorf("%q: %w", t.Author, err)
		}
		report.Testimonials++
	}
	return nil
}
