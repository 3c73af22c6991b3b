package app

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"mockgraph/internal/config"
	"mockgraph/internal/queue"
	"mockgraph/internal/sse"
	"mockgraph/internal/telemetry"
)

// App owns the long-running parts of one deployment: the HTTP server, the
// SSE hub loop and the optional create-command consumer.
type App struct {
	cfg       *config.Config
	hub       *sse.Hub
	consumer  queue.Consumer
	publisher queue.Publisher
	server    *http.Server
	logger    *zap.Logger
	wg        sync.WaitGroup

	tracingShutdown telemetry.ShutdownFunc
}

func NewApp(cfg *config.Config, hub *sse.Hub, consumer queue.Consumer, publisher queue.Publisher, router *gin.Engine, logger *zap.Logger) *App {
	// Streaming /events requests never finish on their own; cancelling the
	// base context on Shutdown lets them return.
	baseCtx, cancel := context.WithCancel(context.Background())
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	server.RegisterOnShutdown(cancel)

	return &App{
		cfg:       cfg,
		hub:       hub,
		consumer:  consumer,
		publisher: publisher,
		server:    server,
		logger:    logger,
	}
}

// Run blocks until the HTTP server stops. A graceful Shutdown makes it
// return nil.
func (a *App) Run(ctx context.Context) error {
	shutdown, err := telemetry.Init(ctx, a.cfg, a.logger)
	if err != nil {
		return err
	}
	a.tracingShutdown = shutdown

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.hub.Run(ctx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.consumer.Start(ctx); err != nil && ctx.Err() == nil {
			a.logger.Error("consumer stopped", zap.Error(err))
		}
	}()

	a.logger.Info("server listening",
		zap.String("addr", a.cfg.HTTPAddr),
		zap.String("kind", string(a.cfg.Kind)),
		zap.Bool("graphiql", a.cfg.GraphiQL),
	)
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("graceful shutdown started")
	shutdownErr := a.server.Shutdown(ctx)

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		if shutdownErr == nil {
			shutdownErr = ctx.Err()
		}
	}

	if closer, ok := a.publisher.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			a.logger.Warn("publisher close failed", zap.Error(err))
		}
	}
	if a.tracingShutdown != nil {
		if err := a.tracingShutdown(ctx); err != nil {
			a.logger.Warn("tracing shutdown failed", zap.Error(err))
		}
	}

	if shutdownErr == nil {
		a.logger.Info("graceful shutdown completed")
	}
	return shutdownErr
}

func (a *App) Logger() *zap.Logger {
	return a.logger
}
