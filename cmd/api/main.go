package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/database/postgres"
	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/integrator/mercadolivre"
	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/integrator/mercadolivre/mlclient"
	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/repository"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/api"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/config"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/scheduler"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/benchmarking"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/hacking"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/scoring"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	listingRepo := repository.NewListingRepository(pgConn)
	metricsRepo := repository.NewListingMetricsRepository(pgConn)
	historyRepo := repository.NewHackHistoryRepository(pgConn)
	snapshotRepo := repository.NewScoreSnapshotRepository(pgConn)

	mlClient := mlclient.NewClient(cfg)
	mlIntegrator := mercadolivre.New(cfg, mlClient)

	scorer := scoring.NewService(listingRepo, metricsRepo, cfg)
	benchmarker := benchmarking.NewService(listingRepo, metricsRepo, mlIntegrator, scorer)
	hacker := hacking.NewService(listingRepo, historyRepo, scorer, benchmarker)

	snapshotSyncService := scheduler.NewScoreSnapshotSyncService(listingRepo, snapshotRepo, scorer, cfg)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de fotografias de score")
	} else {
		logrus.Info("Agendador de fotografias de score iniciado com sucesso")
	}

	server, err := api.New(cfg, pgConn, scorer, benchmarker, hacker, snapshotSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
