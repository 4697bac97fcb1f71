package mercadolivre

import (
	"context"

	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/integrator/mercadolivre/mldomain"
	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/integrator/mercadolivre/mlclient"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/config"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
	"github.com/sirupsen/logrus"
)

const defaultCompetitorSampleSize = 20

type Integrator interface {
	GetCategoryCompetitors(ctx context.Context, categoryID, excludeItemID string) ([]domain.Competitor, error)
}

type MercadoLivreIntegrator struct {
	sampleSize int
	Client     mlclient.Client
}

func New(cfg *config.Config, client mlclient.Client) Integrator {
	sampleSize := cfg.MercadoLivre.CompetitorSampleSize
	if sampleSize <= 0 {
		sampleSize = defaultCompetitorSampleSize
	}

	return &MercadoLivreIntegrator{
		sampleSize: sampleSize,
		Client:     client,
	}
}

// GetCategoryCompetitors devolve a amostra de concorrentes da categoria, sem o próprio anúncio
func (s *MercadoLivreIntegrator) GetCategoryCompetitors(ctx context.Context, categoryID, excludeItemID string) ([]domain.Competitor, error) {
	// um a mais para compensar o próprio anúncio na busca
	search, err := s.Client.SearchByCategory(ctx, categoryID, s.sampleSize+1)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"category_id": categoryID,
			"error":       err.Error(),
		}).Error("mercadolivre: falha ao buscar concorrentes da categoria")
		return nil, err
	}

	ids := make([]string, 0, len(search.Results))
	for _, result := range search.Results {
		if result.ID == excludeItemID {
			continue
		}
		ids = append(ids, result.ID)
		if len(ids) == s.sampleSize {
			break
		}
	}

	if len(ids) == 0 {
		return []domain.Competitor{}, nil
	}

	items, err := s.Client.GetItems(ctx, ids)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"category_id": categoryID,
			"error":       err.Error(),
		}).Error("mercadolivre: falha ao buscar detalhes dos concorrentes")
		return nil, err
	}

	competitors := make([]domain.Competitor, 0, len(items))
	for _, item := range items {
		competitors = append(competitors, FactoryCompetitor(item))
	}

	logrus.WithFields(logrus.Fields{
		"category_id": categoryID,
		"sample_size": len(competitors),
	}).Debug("mercadolivre: concorrentes obtidos")

	return competitors, nil
}

func FactoryCompetitor(item mldomain.Item) domain.Competitor {
	return domain.Competitor{
		ID:            item.ID,
		Title:         item.Title,
		Price:         item.Price,
		PicturesCount: len(item.Pictures),
		HasVideo:      videoTriState(item.VideoID),
		CategoryID:    item.CategoryID,
	}
}

// videoTriState: campo ausente é desconhecido; null ou vazio significa sem vídeo
func videoTriState(video mldomain.OptionalString) domain.TriState {
	if !video.Present {
		return domain.TriStateUnknown
	}
	if video.Value == nil || *video.Value == "" {
		return domain.TriStateFalse
	}
	return domain.TriStateTrue
}
