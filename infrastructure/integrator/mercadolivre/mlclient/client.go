package mlclient

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/integrator/mercadolivre/mldomain"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/config"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	SearchByCategory(ctx context.Context, categoryID string, limit int) (*mldomain.SearchResponse, error)
	GetItems(ctx context.Context, itemIDs []string) ([]mldomain.Item, error)
}

type MLClient struct {
	httpClient *http.Client
	cfg        config.MercadoLivre
}

func NewClient(cfg *config.Config) Client {
	return &MLClient{
		httpClient: &http.Client{
			Timeout: cfg.MercadoLivre.RequestTimeout,
		},
		cfg: cfg.MercadoLivre,
	}
}

// get executa a requisição e decodifica o corpo em out
func (c *MLClient) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("mercadolivre: erro ao criar a requisição")
		return err
	}

	req.Header.Set("Accept", "application/json")
	if c.cfg.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("mercadolivre: erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta do mercado livre: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &mldomain.ErrorResponse{Status: resp.StatusCode}
		if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		apiErr.Status = resp.StatusCode
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).Error("mercadolivre: erro ao decodificar JSON")
		return err
	}

	return nil
}
