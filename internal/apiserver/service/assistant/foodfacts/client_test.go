package foodfacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/pkg/errno"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func TestGetByBarcode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product/737628064502.json", r.URL.Path)
		assert.Contains(t, r.Header.Get("User-Agent"), "Kinetra")
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"product_name": "Rice Noodles",
				"brands": "Thai Kitchen",
				"nutriments": {
					"energy-kcal_100g": 385,
					"proteins_100g": 6.4,
					"carbohydrates_100g": 86,
					"fat_100g": 1.2
				},
				"serving_size": "55 g",
				"serving_quantity": "55"
			}
		}`))
	})

	p, err := c.GetByBarcode(context.Background(), "737628064502")
	require.NoError(t, err)
	assert.Equal(t, "737628064502", p.Barcode)
	assert.Equal(t, "Rice Noodles", p.Name)
	assert.Equal(t, "Thai Kitchen", p.Brand)
	require.NotNil(t, p.CaloriesPer100g)
	assert.Equal(t, 385.0, *p.CaloriesPer100g)
	require.NotNil(t, p.ServingSizeG)
	assert.Equal(t, 55.0, *p.ServingSizeG)
	assert.Equal(t, "55 g", p.ServingDescription)
}

func TestGetByBarcodeNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status": 0}`))
	})

	_, err := c.GetByBarcode(context.Background(), "000")
	assert.ErrorIs(t, err, errno.ErrProductNotFound)
}

func TestGetByBarcodeServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.GetByBarcode(context.Background(), "123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "greek yogurt", r.URL.Query().Get("search_terms"))
		assert.Equal(t, "5", r.URL.Query().Get("page_size"))
		w.Write([]byte(`{
			"products": [
				{"code": "111", "product_name": "Greek Yogurt", "nutriments": {"energy-kcal_100g": 59}},
				{"code": "222", "product_name": ""},
				{"product_name": "No Barcode"},
				{"code": "333", "product_name_en": "Strained Yogurt"}
			]
		}`))
	})

	products, err := c.Search(context.Background(), "greek yogurt", 5)
	require.NoError(t, err)
	// Nameless and barcode-less entries are skipped.
	require.Len(t, products, 2)
	assert.Equal(t, "Greek Yogurt", products[0].Name)
	assert.Equal(t, "Strained Yogurt", products[1].Name)
}

func TestParseProductEnergyKilojouleFallback(t *testing.T) {
	p := parseProduct("1", map[string]interface{}{
		"product_name": "Oats",
		"nutriments":   map[string]interface{}{"energy_100g": 1568.0},
	})

	require.NotNil(t, p)
	require.NotNil(t, p.CaloriesPer100g)
	assert.InDelta(t, 374.76, *p.CaloriesPer100g, 0.01)
}

func TestParseProductSodiumGramsToMilligrams(t *testing.T) {
	p := parseProduct("1", map[string]interface{}{
		"product_name": "Crackers",
		"nutriments":   map[string]interface{}{"sodium_100g": 0.8},
	})

	require.NotNil(t, p)
	require.NotNil(t, p.SodiumPer100g)
	assert.Equal(t, 800.0, *p.SodiumPer100g)
}

func TestParseProductStringNutriments(t *testing.T) {
	p := parseProduct("1", map[string]interface{}{
		"product_name": "Milk",
		"nutriments":   map[string]interface{}{"proteins_100g": "3.4"},
	})

	require.NotNil(t, p)
	require.NotNil(t, p.ProteinPer100g)
	assert.Equal(t, 3.4, *p.ProteinPer100g)
}

func TestParseProductNoName(t *testing.T) {
	assert.Nil(t, parseProduct("1", map[string]interface{}{"nutriments": map[string]interface{}{}}))
}
