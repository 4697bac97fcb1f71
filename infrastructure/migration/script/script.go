package main

import (
	"context"
	"database/sql"
	"flag"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"

	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/database/postgres"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/config"
)

const (
	idLength   = 12
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

type seedListing struct {
	ExternalID    string
	Title         string
	CategoryID    string
	Price         float64
	PicturesCount int
	ShippingMode  string
}

// demoListings abastece um tenant de demonstração para testes manuais da API
var demoListings = []seedListing{
	{ExternalID: "MLB1000000001", Title: "Panela Antiaderente Inox 24cm", CategoryID: "MLB1574", Price: 129.90, PicturesCount: 8, ShippingMode: "me2"},
	{ExternalID: "MLB1000000002", Title: "Kit 3 Toalhas de Banho Algodão", CategoryID: "MLB1631", Price: 67.00, PicturesCount: 4, ShippingMode: "full"},
	{ExternalID: "MLB1000000003", Title: "Fone Bluetooth", CategoryID: "MLB1000", Price: 19.99, PicturesCount: 2, ShippingMode: "flex"},
}

func generateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}

func insertDemoListings(tx *sql.Tx, tenantID string) error {
	logrus.Infof("Iniciando inserção de %d anúncios de demonstração...", len(demoListings))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO listings (id, tenant_id, external_id, title, category_id, price, pictures_count, shipping_mode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	successCount := 0
	for i, l := range demoListings {
		_, err := stmt.Exec(generateID(), tenantID, l.ExternalID, l.Title, l.CategoryID, l.Price, l.PicturesCount, l.ShippingMode)
		if err != nil {
			logrus.WithError(err).Errorf("ERRO ao inserir anúncio [%d/%d] %s", i+1, len(demoListings), l.Title)
			return err
		}
		successCount++
	}

	logrus.Infof("Inserção de anúncios concluída em %v. Sucesso: %d", time.Since(startTime), successCount)
	return nil
}

func main() {
	seed := flag.Bool("seed", false, "insere anúncios de demonstração")
	tenantID := flag.String("tenant", "demo", "tenant dos anúncios de demonstração")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := conn.ApplySchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar o schema")
	}
	logrus.Info("Schema aplicado com sucesso")

	if !*seed {
		return
	}

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return insertDemoListings(tx, *tenantID)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inserir anúncios de demonstração")
	}

	logrus.Info("Migração concluída")
}
