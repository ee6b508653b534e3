package router

import (
	"log/slog"
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"sampleapp/internal/auth"
	"sampleapp/internal/handler"
	"sampleapp/internal/metrics"
	"sampleapp/internal/view"
)

// Handlers groups the page and API handlers the route table dispatches to.
type Handlers struct {
	Users         *handler.UserHandler
	Sessions      *handler.SessionHandler
	Relationships *handler.RelationshipHandler
	Microposts    *handler.MicropostHandler
	Static        *handler.StaticHandler
	Accounts      *handler.AccountHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, log *slog.Logger, jwtService *auth.JWTService, h Handlers) {
	// HTML forms tunnel PATCH and DELETE through a hidden _method field.
	e.Pre(middleware.MethodOverrideWithConfig(middleware.MethodOverrideConfig{
		Getter: func(c echo.Context) string {
			return strings.ToUpper(c.FormValue("_method"))
		},
	}))

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			log.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())
	e.Use(view.FlashMiddleware())

	// A missing or invalid session cookie leaves the request anonymous.
	e.Use(echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + handler.SessionCookieName,
		ContextKey:  handler.ClaimsContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
	}))
	e.Use(h.Sessions.LoadCurrentAccount)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Static pages
	e.GET("/", h.Static.Home)
	e.GET("/about", h.Static.About)

	// Signup and sessions
	e.GET("/signup", h.Users.New)
	e.POST("/signup", h.Users.Create)
	e.GET("/signin", h.Sessions.New)
	e.POST("/signin", h.Sessions.Create)
	e.DELETE("/signout", h.Sessions.Destroy)
	e.POST("/signout", h.Sessions.Destroy)

	// Users
	e.GET("/users", h.Users.Index, handler.RequireSignIn)
	e.GET("/users/:id", h.Users.Show)
	e.GET("/users/:id/edit", h.Users.Edit, handler.RequireSignIn)
	e.PATCH("/users/:id", h.Users.Update, handler.RequireSignIn)
	e.PUT("/users/:id", h.Users.Update, handler.RequireSignIn)
	e.DELETE("/users/:id", h.Users.Destroy, handler.RequireSignIn)
	e.GET("/users/:id/following", h.Users.Following, handler.RequireSignIn)
	e.GET("/users/:id/followers", h.Users.Followers, handler.RequireSignIn)

	// Follow graph
	e.POST("/relationships", h.Relationships.Create, handler.RequireSignIn)
	e.DELETE("/relationships/:id", h.Relationships.Destroy, handler.RequireSignIn)

	// Microposts
	e.POST("/microposts", h.Microposts.Create, handler.RequireSignIn)
	e.DELETE("/microposts/:id", h.Microposts.Destroy, handler.RequireSignIn)

	api := e.Group("/api")
	api.GET("/users/:id", h.Accounts.GetProfile)
}
