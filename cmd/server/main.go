package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/net/http2"

	"noticeboard/internal/api"
	"noticeboard/internal/auth"
	"noticeboard/internal/middleware"
	"noticeboard/internal/service"
	"noticeboard/internal/storage/sqlite"
	"noticeboard/pkg/logging"
)

const tokenDuration = 24 * time.Hour

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.Setup()

	dbPath := getEnv("DB_PATH", "./data/noticeboard.db")
	port := getEnv("PORT", "8080")
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath)

	authenticator := auth.NewPasswordAuthenticator(store)
	jwtManager := auth.NewJWTManager(jwtSecret, tokenDuration)

	server := api.NewServer(
		authenticator,
		jwtManager,
		service.NewBoardService(store),
		service.NewItemService(store),
		service.NewMoveCoordinator(store),
		service.NewSharingService(store, store),
		service.NewQueryService(store),
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogging())
	e.Use(middleware.Metrics())
	server.Register(e)

	addr := ":" + port
	slog.Info("Server starting", "address", addr)
	// h2c so clients can speak HTTP/2 without TLS, same as the usual
	// local/dev setup behind a terminating proxy.
	if err := e.StartH2CServer(addr, &http2.Server{}); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
