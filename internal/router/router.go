package router

import (
	"strings"
	"time"

	"github.com/manoranjan-programmer/fiesta-ignitron/internal/auth"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/config"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/handler"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/middleware"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup configures the gin engine with CORS and every route.
func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Credentialed CORS: only configured origins (plus vercel preview
	// deploys) may call the API from a browser. An unlisted origin is
	// simply not echoed back, never a 5xx.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range cfg.CORS.Origins {
				if origin == allowed {
					return true
				}
			}
			return strings.HasSuffix(origin, ".vercel.app")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authSvc := auth.NewService(db, cfg.Security.BcryptCost)
	sessions := session.NewManager(db, time.Duration(cfg.Session.TTLHours)*time.Hour)

	authHandler := handler.NewAuthHandler(authSvc, sessions,
		cfg.Session.CookieName, cfg.Session.CrossOrigin, cfg.Frontend.URL)
	oauthHandler := handler.NewOAuthHandler(authHandler, cfg.Google, cfg.Session.Secret)
	teamHandler := handler.NewTeamHandler(db)

	requireAuth := middleware.Auth(sessions, cfg.Session.CookieName)

	// OAuth flow and logout live outside /api; the browser navigates to
	// them directly and gets redirects back.
	r.GET("/auth/google", oauthHandler.Redirect)
	r.GET("/auth/google/callback", oauthHandler.Callback)
	r.GET("/auth/logout", authHandler.Logout)

	api := r.Group("/api")
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(requireAuth)
	protected.GET("/auth/check", authHandler.Check)
	protected.POST("/submit-team", teamHandler.Submit)
	protected.GET("/teams", teamHandler.History)
	protected.GET("/teams/export", teamHandler.ExportXLSX)

	return r
}
