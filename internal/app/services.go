package app

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/notify"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/service"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
)

// Services — сервисный слой, общий для HTTP сервера и portfolioctl.
type Services struct {
	Auth         *service.AuthService
	Sections     *service.SectionService
	Categories   *service.CategoryService
	Skills       *service.SkillService
	AboutSkills  *service.AboutSkillService
	Projects     *service.ProjectService
	Experiences  *service.ExperienceService
	Testimonials *service.TestimonialService
	Media        *service.MediaService
	Messages     *service.MessageService
	Site         *service.SiteService
	Seed         *service.SeedService
	Cache        *service.CacheService
}

// NewServices собирает репозитории и сервисы. hub и notifier могут быть nil,
// тогда новые сообщения никуда не анонсируются (так работает CLI).
// Фоновые задачи сервисов живут до отмены ctx.
func NewServices(ctx context.Context, conn *sqlx.DB, cfg *config.Config, hub service.Broadcaster, notifier notify.Notifier) (*Services, error) {
	mediaStorage, err := storage.NewMediaStorage(cfg.MediaStoragePath, cfg.MediaPublicPrefix, cfg.MaxUploadSizeMB)
	if err != nil {
		return nil, err
	}

	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.RefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	categoryRepo := repository.NewCategoryRepository(conn)
	skillRepo := repository.NewSkillRepository(conn)

	s := &Services{
		Auth:         service.NewAuthService(repository.NewAdminRepository(conn), tokenManager),
		Sections:     service.NewSectionService(repository.NewSectionRepository(conn)),
		Categories:   service.NewCategoryService(categoryRepo),
		Skills:       service.NewSkillService(skillRepo, categoryRepo),
		AboutSkills:  service.NewAboutSkillService(repository.NewAboutSkillRepository(conn), skillRepo),
		Projects:     service.NewProjectService(repository.NewProjectRepository(conn)),
		Experiences:  service.NewExperienceService(repository.NewExperienceRepository(conn)),
		Testimonials: service.NewTestimonialService(repository.NewTestimonialRepository(conn)),
		Media:        service.NewMediaService(repository.NewMediaRepository(conn), mediaStorage),
		Cache:        service.NewCacheService(ctx),
	}
	if hub == nil {
		hub = noopBroadcaster{}
	}
	s.Messages = service.NewMessageService(repository.NewMessageRepository(conn), hub, notifier)
	s.Site = service.NewSiteService(s.Sections, s.AboutSkills, s.Categories, s.Skills, s.Projects, s.Experiences, s.Testimonials).
		WithCache(s.Cache, cfg.PublicCacheTTL)
	s.Seed = service.NewSeedService(s.Sections, s.Categories, s.Skills, s.AboutSkills, s.Projects, s.Experiences, s.Testimonials)
	return s, nil
}

// Notifier возвращает отправителя писем через Resend, если он настроен.
func Notifier(cfg *config.Config) notify.Notifier {
	if !cfg.NotificationsEnabled() {
		return notify.Noop()
	}
	return notify.NewResendNotifier(cfg.ResendAPIKey, cfg.NotifyFromEmail, cfg.NotifyToEmail, cfg.SiteURL)
}

type noopBroadcaster struct{}

func (noopBroadcaster) Broadcast(string, any) error { return nil }
