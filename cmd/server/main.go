package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "sampleapp/docs" // swagger docs

	"sampleapp/internal/app"
	"sampleapp/internal/cache"
	"sampleapp/internal/config"
	"sampleapp/internal/db"
	"sampleapp/internal/logger"
)

// @title Sample App
// @version 1.0
// @description Micro-posting site: signup, profiles, follows, microposts and a read-only JSON profile API.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()
	log := logger.New(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.Open(cfg, log)
	if err != nil {
		log.Error("database init", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gormDB, cfg.ResetDB, log); err != nil {
		log.Error("migrate", "error", err)
		os.Exit(1)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if cacheClient.Enabled() {
		if err := cacheClient.Ping(ctx); err != nil {
			log.Warn("redis unreachable, continuing without cache", "addr", cfg.RedisAddr, "error", err)
		}
		defer cacheClient.Close()
	} else {
		log.Info("REDIS_ADDR not set; account cache and session revocation disabled")
	}

	application, err := app.New(cfg, gormDB, cacheClient, log)
	if err != nil {
		log.Error("app init", "error", err)
		os.Exit(1)
	}

	if cfg.AdminEmail != "" {
		admin, err := application.Accounts.EnsureAdmin(ctx, "Admin", cfg.AdminEmail, cfg.AdminPass)
		if err != nil {
			log.Error("admin bootstrap", "email", cfg.AdminEmail, "error", err)
			os.Exit(1)
		}
		log.Info("admin account ready", "id", admin.ID, "email", admin.Email)
	}

	log.Info("swagger documentation available", "url", swaggerURL(cfg))

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server starting", "addr", addr, "driver", cfg.DBDriver)
		if err := application.Echo.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("server start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := application.Echo.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	// SwaggerHost may already include the scheme.
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
