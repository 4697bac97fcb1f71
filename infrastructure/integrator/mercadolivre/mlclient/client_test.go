package mlclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/integrator/mercadolivre/mldomain"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) Client {
	return NewClient(&config.Config{MercadoLivre: config.MercadoLivre{
		BaseURL:        server.URL,
		SiteID:         "MLB",
		AccessToken:    "token-teste",
		RequestTimeout: 5 * time.Second,
	}})
}

func TestMLClient_SearchByCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sites/MLB/search", r.URL.Path)
		assert.Equal(t, "MLB1055", r.URL.Query().Get("category"))
		assert.Equal(t, "21", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer token-teste", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"site_id":"MLB","results":[{"id":"MLB1","title":"Fone","price":99.9,"category_id":"MLB1055"}],"paging":{"total":1,"offset":0,"limit":21}}`))
	}))
	defer server.Close()

	response, err := newTestClient(server).SearchByCategory(context.Background(), "MLB1055", 21)
	require.NoError(t, err)
	require.Len(t, response.Results, 1)
	assert.Equal(t, "MLB1", response.Results[0].ID)
	assert.Equal(t, 1, response.Paging.Total)
}

func TestMLClient_GetItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items", r.URL.Path)
		assert.Equal(t, "MLB1,MLB2,MLB3", r.URL.Query().Get("ids"))

		_, _ = w.Write([]byte(`[
			{"code":200,"body":{"id":"MLB1","pictures":[{"id":"a"},{"id":"b"}],"video_id":"yt1"}},
			{"code":200,"body":{"id":"MLB2","pictures":[],"video_id":null}},
			{"code":404,"body":{"id":"MLB3"}}
		]`))
	}))
	defer server.Close()

	items, err := newTestClient(server).GetItems(context.Background(), []string{"MLB1", "MLB2", "MLB3"})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Len(t, items[0].Pictures, 2)
	assert.True(t, items[0].VideoID.Present)
	require.NotNil(t, items[0].VideoID.Value)
	assert.Equal(t, "yt1", *items[0].VideoID.Value)

	assert.True(t, items[1].VideoID.Present)
	assert.Nil(t, items[1].VideoID.Value)
}

func TestMLClient_ErroDaAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid access token","error":"unauthorized","status":401}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).SearchByCategory(context.Background(), "MLB1055", 5)
	require.Error(t, err)

	var apiErr *mldomain.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsUnauthorized())
	assert.Equal(t, "invalid access token", apiErr.Message)
}
