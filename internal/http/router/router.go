package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
)

// Handlers — все HTTP обработчики приложения.
type Handlers struct {
	Auth         *handlers.AuthHandler
	AboutSkills  *handlers.AboutSkillHandler
	Categories   *handlers.CategoryHandler
	Skills       *handlers.SkillHandler
	Sections     *handlers.SectionHandler
	Projects     *handlers.ProjectHandler
	Experiences  *handlers.ExperienceHandler
	Testimonials *handlers.TestimonialHandler
	Media        *handlers.MediaHandler
	Messages     *handlers.MessageHandler
	Public       *handlers.PublicHandler
	WS           *handlers.WSHandler
	Health       *handlers.HealthHandler
}

// SetupRouter собирает gin.Engine. CORS навешивается снаружи, в main.
// onAdminWrite вызывается после каждого успешного изменения из админки, может быть nil.
func SetupRouter(cfg *config.Config, h Handlers, auth middleware.Authenticator, onAdminWrite func()) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())

	r.GET("/health", h.Health.Health)
	r.Group(cfg.MediaPublicPrefix, middleware.UploadHeaders()).StaticFS("/", http.Dir(cfg.MediaStoragePath))

	api := r.Group("/api")

	authRateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authRateLimit, h.Auth.Login)
		authGroup.POST("/refresh", authRateLimit, h.Auth.Refresh)
		authGroup.POST("/logout", middleware.AuthMiddleware(auth), h.Auth.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(auth), h.Auth.Me)
	}

	api.POST("/contact", middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod), h.Messages.Submit)

	public := api.Group("/public")
	{
		public.GET("/site", h.Public.Site)
		public.GET("/about/skills", h.Public.AboutSkills)
		public.GET("/hero", h.Sections.Hero)
		public.GET("/about", h.Sections.About)
		public.GET("/contact", h.Sections.Contact)
		public.GET("/footer", h.Sections.Footer)
		public.GET("/skill-categories", h.Categories.ListActive)
		public.GET("/skills", h.Public.Skills)
		public.GET("/projects", h.Projects.List)
		public.GET("/projects/:slug", h.Projects.GetBySlug)
		public.GET("/experiences", h.Experiences.List)
		public.GET("/testimonials", h.Testimonials.List)
	}

	// токен websocket приходит в query, заголовок при апгрейде браузер не передаёт
	api.GET("/admin/ws", h.WS.Handle)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(auth), middleware.InvalidateOnWrite(onAdminWrite))
	registerAdminRoutes(admin, h)

	return r
}

func registerAdminRoutes(admin *gin.RouterGroup, h Handlers) {
	id := middleware.IDParam("id")

	about := admin.Group("/about")
	{
		about.GET("/skills", h.AboutSkills.Overview)
		about.POST("/skills", h.AboutSkills.Select)
		about.DELETE("/skills", h.AboutSkills.Deselect)
		about.PUT("/skills", h.AboutSkills.ReplaceOrder)
		about.POST("/skills/:skillId/move", middleware.IDParam("skillId"), h.AboutSkills.Move)
	}

	categories := admin.Group("/skill-categories")
	{
		categories.GET("", h.Categories.List)
		categories.POST("", h.Categories.Create)
		categories.GET("/:id", id, h.Categories.Get)
		categories.PUT("/:id", id, h.Categories.Update)
		categories.DELETE("/:id", id, h.Categories.Delete)
	}

	skills := admin.Group("/skills")
	{
		skills.GET("", h.Skills.List)
		skills.POST("", h.Skills.Create)
		skills.PUT("/order", h.Skills.Reorder)
		skills.GET("/:id", id, h.Skills.Get)
		skills.PUT("/:id", id, h.Skills.Update)
		skills.DELETE("/:id", id, h.Skills.Delete)
	}

	sections := admin.Group("/sections")
	{
		sections.GET("/hero", h.Sections.Hero)
		sections.PUT("/hero", h.Sections.UpdateHero)
		sections.GET("/about", h.Sections.About)
		sections.PUT("/about", h.Sections.UpdateAbout)
		sections.GET("/contact", h.Sections.Contact)
		sections.PUT("/contact", h.Sections.UpdateContact)
		sections.GET("/footer", h.Sections.Footer)
		sections.PUT("/footer", h.Sections.UpdateFooter)
		sections.GET("/:key", h.Sections.Header)
		sections.PUT("/:key", h.Sections.UpdateHeader)
	}

	projects := admin.Group("/projects")
	{
		projects.GET("", h.Projects.List)
		projects.POST("", h.Projects.Create)
		projects.PUT("/order", h.Projects.Reorder)
		projects.GET("/:id", id, h.Projects.Get)
		projects.PUT("/:id", id, h.Projects.Update)
		projects.DELETE("/:id", id, h.Projects.Delete)
	}

	experiences := admin.Group("/experiences")
	{
		experiences.GET("", h.Experiences.List)
		experiences.POST("", h.Experiences.Create)
		experiences.PUT("/order", h.Experiences.Reorder)
		experiences.GET("/:id", id, h.Experiences.Get)
		experiences.PUT("/:id", id, h.Experiences.Update)
		experiences.DELETE("/:id", id, h.Experiences.Delete)
	}

	testimonials := admin.Group("/testimonials")
	{
		testimonials.GET("", h.Testimonials.List)
		testimonials.POST("", h.Testimonials.Create)
		testimonials.PUT("/order", h.Testimonials.Reorder)
		testimonials.GET("/:id", id, h.Testimonials.Get)
		testimonials.PUT("/:id", id, h.Testimonials.Update)
		testimonials.DELETE("/:id", id, h.Testimonials.Delete)
	}

	media := admin.Group("/media")
	{
		media.GET("", h.Media.List)
		media.POST("", h.Media.Upload)
		media.PUT("/:id", id, h.Media.UpdateAltText)
		media.DELETE("/:id", id, h.Media.Delete)
	}

	messages := admin.Group("/messages")
	{
		messages.GET("", h.Messages.List)
		messages.GET("/unread-count", h.Messages.UnreadCount)
		messages.GET("/:id", id, h.Messages.Get)
		messages.PUT("/:id/read", id, h.Messages.MarkRead)
		messages.DELETE("/:id", id, h.Messages.Delete)
	}
}
