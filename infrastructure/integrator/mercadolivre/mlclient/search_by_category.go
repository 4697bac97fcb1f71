package mlclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/integrator/mercadolivre/mldomain"
)

// maxItemsPerMultiGet é o limite de ids aceito por /items?ids=
const maxItemsPerMultiGet = 20

func (c *MLClient) SearchByCategory(ctx context.Context, categoryID string, limit int) (*mldomain.SearchResponse, error) {
	params := url.Values{}
	params.Add("category", categoryID)
	params.Add("limit", strconv.Itoa(limit))

	searchURL := fmt.Sprintf("%s/sites/%s/search?%s", c.cfg.BaseURL, c.cfg.SiteID, params.Encode())

	var response mldomain.SearchResponse
	if err := c.get(ctx, searchURL, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// GetItems busca os detalhes (imagens e vídeo) em lotes do multiget
func (c *MLClient) GetItems(ctx context.Context, itemIDs []string) ([]mldomain.Item, error) {
	items := make([]mldomain.Item, 0, len(itemIDs))

	for start := 0; start < len(itemIDs); start += maxItemsPerMultiGet {
		end := start + maxItemsPerMultiGet
		if end > len(itemIDs) {
			end = len(itemIDs)
		}

		params := url.Values{}
		params.Add("ids", strings.Join(itemIDs[start:end], ","))
		params.Add("attributes", "id,title,price,category_id,pictures,video_id")

		var entries []mldomain.MultiGetEntry
		if err := c.get(ctx, fmt.Sprintf("%s/items?%s", c.cfg.BaseURL, params.Encode()), &entries); err != nil {
			return nil, err
		}

		for _, entry := range entries {
			if entry.Code != 200 {
				continue
			}
			items = append(items, entry.Body)
		}
	}

	return items, nil
}
