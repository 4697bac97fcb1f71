package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/api/handler"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/api/handler/router"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/config"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/scheduler"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/benchmarking"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/hacking"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/scoring"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	db handler.Pinger,
	scorer scoring.Scorer,
	benchmarker benchmarking.Benchmarker,
	hacker hacking.Hacker,
	snapshotSyncService *scheduler.ScoreSnapshotSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		handler.CronJobTypeScoreSnapshot: snapshotSyncService,
	}

	v1Middlewares := handler.APIMiddlewares()

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithGroup(handler.APIPrefix, v1Middlewares, handler.Scoring(scorer, config.Scoring.PeriodDays)...),
		router.WithGroup(handler.APIPrefix, v1Middlewares, handler.Benchmark(benchmarker)...),
		router.WithGroup(handler.APIPrefix, v1Middlewares, handler.Hacks(hacker)...),
		router.WithGroup(handler.APIPrefix, v1Middlewares, handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(config.Auth.Secret),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
