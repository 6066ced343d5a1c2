package api

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/app/config"
	"storefront/internal/app/content"
	"storefront/internal/app/handler"
	"storefront/internal/app/metrics"
	"storefront/internal/app/middleware"
	"storefront/internal/app/navigation"
	"storefront/internal/app/pricing"
	"storefront/internal/app/redis"
	"storefront/internal/app/session"
	"storefront/internal/app/storage"
	"storefront/internal/app/view"
	"storefront/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

const serviceName = "storefront"

// StartServer собирает зависимости по конфигурации и обслуживает запросы до отмены ctx
func StartServer(ctx context.Context, cfg *config.Config) error {
	logrus.Info("Starting server")

	store, err := loadContent(cfg.Site.ContentFile)
	if err != nil {
		return err
	}

	machine, err := navigation.NewMachine(navigation.ParsePages(cfg.Site.Pages))
	if err != nil {
		return fmt.Errorf("site pages: %w", err)
	}

	controller := view.NewController(machine, store, pricing.NewCalculator(fallbackLocale(cfg.Site.Locales)), cfg.Site.DefaultLicenses)

	sessions, closeSessions, err := newSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSessions()

	h := handler.NewHandler(controller, sessions, newAssets(ctx, cfg.MinIO), cfg)

	return pkg.NewApp(cfg, NewRouter(cfg), h).RunApp(ctx)
}

// NewRouter создает gin.Engine с общими middleware
func NewRouter(cfg *config.Config) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	metrics.Register()

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(),
		metrics.NewHTTPMetrics(serviceName).Middleware(),
		cors.New(corsConfig(cfg.CORS)),
	)
	return r
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Language", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range cfg.AllowOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = cfg.AllowOrigins
	return c
}

func loadContent(path string) (*content.Store, error) {
	store, err := content.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return store, nil
}

func fallbackLocale(ids []string) language.Tag {
	for _, id := range ids {
		if tag, err := language.Parse(id); err == nil {
			return tag
		}
	}
	return language.AmericanEnglish
}

func newSessionStore(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	if cfg.Session.Backend == config.SessionBackendRedis {
		client, err := redis.New(ctx, cfg.Redis, cfg.Session.TTL)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {
			if err := client.Close(); err != nil {
				logrus.Warnf("close redis: %v", err)
			}
		}, nil
	}

	store := session.NewMemoryStore(cfg.Session.TTL)
	go store.RunJanitor(ctx, janitorInterval(cfg.Session.TTL))
	logrus.WithField("ttl", cfg.Session.TTL).Info("in-memory session store started")
	return store, func() {}, nil
}

func janitorInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	return interval
}

// newAssets возвращает presigned ссылки из MinIO; без MinIO используются постоянные адреса
func newAssets(ctx context.Context, cfg config.MinIOConfig) storage.Assets {
	static := storage.StaticAssets(storage.DefaultAssetURLs)
	if !cfg.Enabled() {
		return static
	}

	client, err := storage.NewMinIOClient(ctx, cfg)
	if err != nil {
		logrus.Warnf("minio unavailable, serving static asset urls: %v", err)
		return static
	}
	return storage.NewMinIOAssets(client, static)
}
