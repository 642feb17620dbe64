package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// Site — всё содержимое публичной страницы одним ответом.
type Site struct {
	Hero         *models.Hero                                `json:"hero"`
	About        *models.About                               `json:"about"`
	AboutSkills  []models.SelectedSkill                      `json:"aboutSkills"`
	Contact      *models.Contact                             `json:"contact"`
	Footer       *models.Footer                              `json:"footer"`
	Sections     map[models.SectionKey]*models.SectionHeader `json:"sections"`
	Categories   []models.SkillCategory                      `json:"categories"`
	Skills       []models.Skill                              `json:"skills"`
	Projects     []models.Project                            `json:"projects"`
	Experiences  []models.Experience                         `json:"experiences"`
	Testimonials []models.Testimonial                        `json:"testimonials"`
}

// SiteService собирает публичную страницу из всех разделов и коллекций.
type SiteService struct {
	sections     *SectionService
	aboutSkills  *AboutSkillService
	categories   *CategoryService
	skills       *SkillService
	projects     *ProjectService
	experiences  *ExperienceService
	testimonials *TestimonialService

	cache    *CacheService
	cacheTTL time.Duration
}

func NewSiteService(
	sections *SectionService,
	aboutSkills *AboutSkillService,
	categories *CategoryService,
	skills *SkillService,
	projects *ProjectService,
	experiences *ExperienceService,
	testimonials *TestimonialService,
) *SiteService {
	return &SiteService{
		sections:     sections,
		aboutSkills:  aboutSkills,
		categories:   categories,
		skills:       skills,
		projects:     projects,
		experiences:  experiences,
		testimonials: testimonials,
	}
}

// WithCache включает кэширование собранной страницы на ttl.
func (s *SiteService) WithCache(cache *CacheService, ttl time.Duration) *SiteService {
	s.cache = cache
	s.cacheTTL = ttl
	return s
}

// Load отдаёт страницу из кэша или собирает её заново.
func (s *SiteService) Load(ctx context.Context) (*Site, error) {
	if s.cache == nil {
		return s.load(ctx)
	}
	return GetOrSet(s.cache, SiteCacheKey, s.cacheTTL, func() (*Site, error) {
		return s.load(ctx)
	})
}

// load читает все разделы параллельно. Первая ошибка отменяет остальные запросы.
func (s *SiteService) load(ctx context.Context) (*Site, error) {
	site := &Site{}
	headers := make([]*models.SectionHeader, len(models.HeaderSectionKeys))

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		site.Hero, err = s.sections.Hero(ctx)
		return err
	})
	g.Go(func() (err error) {
		site.About, err = s.sections.About(ctx)
		return err
	})
	g.Go(func() (err error) {
		site.AboutSkills, err = s.aboutSkills.Selected(ctx)
		return err
	})
	g.Go(func() (err error) {
		site.Contact, err = s.sections.Contact(ctx)
		return err
	})
	g.Go(func() (err error) {
		site.Footer, err = s.sections.Footer(ctx)
		return err
	})
	for i, key := range models.HeaderSectionKeys {
		g.Go(func() (err error) {
			headers[i], err = s.sections.Header(ctx, key)
			return err
		})
	}
	g.Go(func() (err error) {
		site.Categories, err = s.categories.List(ctx, true)
		return err
	})
	g.Go(func() (err error) {
		site.Skills, err = s.skills.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		site.Projects, err = s.projects.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		site.Experiences, err = s.experiences.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		site.Testimonials, err = s.testimonials.List(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	site.Sections = make(map[models.SectionKey]*models.SectionHeader, len(headers))
	for i, key := range models.HeaderSectionKeys {
		site.Sections[key] = headers[i]
	}
	site.Skills = visibleSkills(site.Skills, site.Categories)
	site.AboutSkills = visibleSelection(site.AboutSkills, site.Skills)
	return site, nil
}

// VisibleSkills — навыки для публичной части, без скрытых категорий.
func (s *SiteService) VisibleSkills(ctx context.Context) ([]models.Skill, error) {
	var (
		skills []models.Skill
		active []models.SkillCategory
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		skills, err = s.skills.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		active, err = s.categories.List(ctx, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return visibleSkills(skills, active), nil
}

// VisibleAboutSkills — выбор «Обо мне» без навыков из скрытых категорий.
// Позиции не пересчитываются: порядок остаётся тем же, что в админке.
func (s *SiteService) VisibleAboutSkills(ctx context.Context) ([]models.SelectedSkill, error) {
	var (
		selected []models.SelectedSkill
		visible  []models.Skill
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		selected, err = s.aboutSkills.Selected(gctx)
		return err
	})
	g.Go(func() (err error) {
		visible, err = s.VisibleSkills(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return visibleSelection(selected, visible), nil
}

// visibleSkills убирает навыки из неактивных категорий; навыки без категории остаются.
func visibleSkills(skills []models.Skill, active []models.SkillCategory) []models.Skill {
	activeIDs := make(map[int64]struct{}, len(active))
	for _, c := range active {
		activeIDs[c.ID] = struct{}{}
	}

	visible := make([]models.Skill, 0, len(skills))
	for _, sk := range skills {
		if sk.CategoryID != nil {
			if _, ok := activeIDs[*sk.CategoryID]; !ok {
				continue
			}
		}
		visible = append(visible, sk)
	}
	return visible
}

// visibleSelection оставляет только выбранные навыки, которые есть среди видимых.
func visibleSelection(selected []models.SelectedSkill, visible []models.Skill) []models.SelectedSkill {
	ids := make(map[int64]struct{}, len(visible))
	for _, sk := range visible {
		ids[sk.ID] = struct{}{}
	}

	out := make([]models.SelectedSkill, 0, len(selected))
	for _, sel := range selected {
		if _, ok := ids[sel.SkillID]; ok {
			out = append(out, sel)
		}
	}
	return out
}
