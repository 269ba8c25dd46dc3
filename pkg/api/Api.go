package api

import (
	"context"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/simplecontainer/massview/pkg/api/middlewares"
	"github.com/simplecontainer/massview/pkg/configuration"
	"github.com/simplecontainer/massview/pkg/contracts/iresponse"
	"github.com/simplecontainer/massview/pkg/static"
	"github.com/simplecontainer/massview/pkg/version"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func NewApi(config *configuration.Configuration, logger *zap.Logger) *Api {
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &Api{
		Config:  config,
		Version: version.New(""),
		Logger:  logger,
	}

	if config.Upload.RateLimit > 0 {
		burst := config.Upload.Burst

		if burst < 1 {
			burst = 1
		}

		a.limiter = rate.NewLimiter(rate.Limit(config.Upload.RateLimit), burst)
	}

	return a
}

func (a *Api) Routes() *gin.Engine {
	router := gin.New()

	router.Use(gin.CustomRecovery(a.panicked))
	router.Use(middlewares.RequestID())
	router.Use(middlewares.Logger(a.Logger))
	router.Use(middlewares.CORS())

	router.SetHTMLTemplate(template.Must(template.New("").ParseFS(templates, "templates/*.html")))

	router.GET("/", a.Index)
	router.POST("/upload", middlewares.RateLimit(a.limiter), a.Upload)

	router.GET("/healthz", a.Health)
	router.GET("/version", a.DisplayVersion)
	router.GET("/metrics", a.MetricsHandle())

	return router
}

// Serve blocks until ctx is cancelled or the listener fails.
func (a *Api) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:         a.Config.Address(),
		Handler:      a.Routes(),
		ReadTimeout:  a.Config.HTTP.ReadTimeout,
		WriteTimeout: a.Config.HTTP.WriteTimeout,
	}

	errs := make(chan error, 1)

	go func() {
		a.Logger.Info("http server listening", zap.String("address", server.Addr))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}

		close(errs)
	}()

	select {
	case err, ok := <-errs:
		if ok {
			return errors.Wrap(err, "http server failed")
		}

		return nil
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down http server", zap.Duration("timeout", a.Config.HTTP.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.HTTP.ShutdownTimeout)
	defer cancel()

	return errors.Wrap(server.Shutdown(shutdownCtx), "graceful shutdown failed")
}

func (a *Api) panicked(c *gin.Context, recovered any) {
	a.Logger.Error("panic while serving request",
		zap.Any("recovered", recovered),
		zap.String("path", c.Request.URL.Path),
		zap.String("requestId", c.GetString(middlewares.RequestIDKey)),
	)

	c.AbortWithStatusJSON(http.StatusInternalServerError,
		iresponse.New(http.StatusInternalServerError, static.RESPONSE_INTERNAL_ERROR, errors.New("internal error"), nil))
}
