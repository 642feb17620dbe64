package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/cors"

	"github.com/ignatzorin/portfolio-backend/internal/app"
	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/db"
	"github.com/ignatzorin/portfolio-backend/internal/goroutine"
	httpHandlers "github.com/ignatzorin/portfolio-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/portfolio-backend/internal/http/router"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/ws"
)

const sessionCleanupInterval = time.Hour

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logger.Setup(cfg.Env, cfg.LogLevel)

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	applied, err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath)
	if err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}
	if len(applied) > 0 {
		logger.Log.WithField("migrations", applied).Info("main: применены миграции")
	}

	// Вебсокеты.
	hub := ws.NewHub(ctx)
	go hub.Run()

	services, err := app.NewServices(ctx, dbConn, cfg, hub, app.Notifier(cfg))
	if err != nil {
		log.Fatalf("main: не удалось подготовить сервисы: %v", err)
	}
	if !cfg.NotificationsEnabled() {
		logger.Log.Info("main: RESEND_API_KEY не задан, письма о новых сообщениях отключены")
	}

	goroutine.SafeGoWithContext(ctx, "session-cleanup", func(ctx context.Context) {
		cleanupSessions(ctx, repository.NewAdminRepository(dbConn))
	})

	// HTTP хэндлеры.
	handlers := httpRouter.Handlers{
		Auth:         httpHandlers.NewAuthHandler(services.Auth),
		AboutSkills:  httpHandlers.NewAboutSkillHandler(services.AboutSkills),
		Categories:   httpHandlers.NewCategoryHandler(services.Categories),
		Skills:       httpHandlers.NewSkillHandler(services.Skills),
		Sections:     httpHandlers.NewSectionHandler(services.Sections),
		Projects:     httpHandlers.NewProjectHandler(services.Projects),
		Experiences:  httpHandlers.NewExperienceHandler(services.Experiences),
		Testimonials: httpHandlers.NewTestimonialHandler(services.Testimonials),
		Media:        httpHandlers.NewMediaHandler(services.Media, cfg.MaxUploadSizeMB<<20),
		Messages:     httpHandlers.NewMessageHandler(services.Messages),
		Public:       httpHandlers.NewPublicHandler(services.Site),
		WS:           httpHandlers.NewWSHandler(hub, services.Auth, cfg.AllowedOrigins),
		Health:       httpHandlers.NewHealthHandler(dbConn, hub.ClientCount),
	}

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, handlers, services.Auth, services.Cache.InvalidatePublic)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           600,
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           corsHandler.Handler(engine),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Error("main: ошибка остановки http сервера")
		}
	}()

	logger.Log.WithField("port", cfg.HTTPPort).Info("main: HTTP сервер запущен")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// cleanupSessions раз в час удаляет истёкшие сессии администратора.
func cleanupSessions(ctx context.Context, repo *repository.AdminRepository) {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := repo.DeleteExpiredSessions(ctx)
			if err != nil {
				logger.Component("session-cleanup").WithError(err).Warn("не удалось удалить истёкшие сессии")
				continue
			}
			if removed > 0 {
				logger.Component("session-cleanup").WithField("removed", removed).Debug("удалены истёкшие сессии")
			}
		}
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
