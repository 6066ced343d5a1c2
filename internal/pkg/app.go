package pkg

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storefront/internal/app/config"
	"storefront/internal/app/handler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.Handler) *Application {
	return &Application{
		Config:  c,
		Router:  r,
		Handler: h,
	}
}

// RunApp обслуживает запросы до отмены ctx, затем плавно останавливает сервер
func (a *Application) RunApp(ctx context.Context) error {
	logrus.Info("Server start up")

	// Регистрируем маршруты. Изображения отдаются по внешним URL или из MinIO
	a.Handler.RegisterRoutes(a.Router)
	a.Handler.RegisterAPIRoutes(a.Router)

	srv := &http.Server{
		Addr:              a.Config.Address(),
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logrus.Info("Server down")
	return nil
}
