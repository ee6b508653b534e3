// Package app assembles the repositories, services and handlers into a
// ready-to-serve echo instance.
package app

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"sampleapp/internal/auth"
	"sampleapp/internal/cache"
	"sampleapp/internal/config"
	"sampleapp/internal/handler"
	"sampleapp/internal/metrics"
	"sampleapp/internal/repository"
	"sampleapp/internal/router"
	"sampleapp/internal/service"
	"sampleapp/internal/validation"
	"sampleapp/internal/view"
)

// App is the wired application.
type App struct {
	Echo     *echo.Echo
	Accounts service.AccountService
	Sessions service.SessionService
	Follows  service.FollowService
	Posts    service.PostService
}

// New wires the application against an open database. cacheClient may be nil.
func New(cfg *config.Config, gormDB *gorm.DB, cacheClient *cache.Client, log *slog.Logger) (*App, error) {
	metrics.Init()

	renderer, err := view.NewRenderer(cfg.SiteTitle)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	validator := validation.New()

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	relationshipRepo := repository.NewRelationshipRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.SessionTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	accountService := service.NewAccountService(accountRepo, cacheClient, validator, cfg.BcryptCost)
	sessionService := service.NewSessionService(accountService, jwtService, tokenStore)
	followService := service.NewFollowService(accountRepo, relationshipRepo)
	postService := service.NewPostService(postRepo, validator)

	// Initialize handlers
	cookies := handler.SessionCookies{Secure: cfg.IsProduction()}
	staticHandler := handler.NewStaticHandler(postService, followService, cfg.PageSize)
	handlers := router.Handlers{
		Users:         handler.NewUserHandler(accountService, sessionService, followService, postService, cookies, cfg.PageSize, log),
		Sessions:      handler.NewSessionHandler(sessionService, cookies, log),
		Relationships: handler.NewRelationshipHandler(followService, log),
		Microposts:    handler.NewMicropostHandler(postService, staticHandler, log),
		Static:        staticHandler,
		Accounts:      handler.NewAccountHandler(accountService, followService, postService),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.HTTPErrorHandler = handler.HTTPErrorHandler(log)
	router.Register(e, log, jwtService, handlers)

	return &App{
		Echo:     e,
		Accounts: accountService,
		Sessions: sessionService,
		Follows:  followService,
		Posts:    postService,
	}, nil
}
