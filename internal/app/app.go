package app

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"feedback_dashboard/internal/config"
	"feedback_dashboard/internal/notify"
	"feedback_dashboard/internal/queue"
	"feedback_dashboard/internal/ratelimit"
)

// App owns every long-lived component: the HTTP server plus the background
// notification workers, the queue consumer and the rate-limit janitor.
type App struct {
	cfg        *config.Config
	dispatcher *notify.Dispatcher
	consumer   queue.Consumer
	limiter    *ratelimit.Limiter
	server     *http.Server
	logger     *zap.Logger
	bgCtx      context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

func NewApp(cfg *config.Config, dispatcher *notify.Dispatcher, consumer queue.Consumer, limiter *ratelimit.Limiter, router *gin.Engine, logger *zap.Logger) *App {
	bgCtx, cancel := context.WithCancel(context.Background())
	return &App{
		cfg:        cfg,
		dispatcher: dispatcher,
		consumer:   consumer,
		limiter:    limiter,
		server: &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: router,
		},
		logger: logger,
		bgCtx:  bgCtx,
		cancel: cancel,
	}
}

// Run serves until Shutdown. Background workers run on the app's own context
// so they keep going while the server drains and stop only when Shutdown
// cancels them.
func (a *App) Run() error {
	bgCtx := a.bgCtx

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.dispatcher.Run(bgCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.consumer.Start(bgCtx); err != nil && bgCtx.Err() == nil {
			a.logger.Error("consumer stopped", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.limiter.Run(bgCtx)
	}()

	a.logger.Info("http server listening", zap.String("addr", a.cfg.HTTPAddr))
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("graceful shutdown started")
	shutdownErr := a.server.Shutdown(ctx)
	a.cancel()

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		a.logger.Info("graceful shutdown completed")
		return shutdownErr
	case <-ctx.Done():
		if shutdownErr != nil {
			return shutdownErr
		}
		return ctx.Err()
	}
}

func (a *App) Logger() *zap.Logger {
	return a.logger
}

func (a *App) Config() *config.Config {
	return a.cfg
}
