// Package foodfacts is a client for the Open Food Facts v2 REST API,
// used for barcode lookups and food name search.
package foodfacts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/pkg/errno"
	"github.com/kinetra/kinetra/pkg/utils/json"
)

const (
	DefaultBaseURL   = "https://world.openfoodfacts.org/api/v2"
	defaultUserAgent = "Kinetra/1.0 (support@kinetra.app)"
	defaultTimeout   = 10 * time.Second

	searchFields = "code,product_name,brands,nutriments,serving_size,serving_quantity,nutriscore_grade,nova_group,image_url"
)

// Product is a food product with nutrition per 100 g. Pointer fields are
// nil when Open Food Facts has no value.
type Product struct {
	Barcode            string   `json:"barcode"`
	Name               string   `json:"name"`
	Brand              string   `json:"brand,omitempty"`
	ImageURL           string   `json:"image_url,omitempty"`
	CaloriesPer100g    *float64 `json:"calories_per_100g,omitempty"`
	ProteinPer100g     *float64 `json:"protein_per_100g,omitempty"`
	CarbsPer100g       *float64 `json:"carbs_per_100g,omitempty"`
	FatPer100g         *float64 `json:"fat_per_100g,omitempty"`
	FiberPer100g       *float64 `json:"fiber_per_100g,omitempty"`
	SodiumPer100g      *float64 `json:"sodium_per_100g,omitempty"`
	SugarPer100g       *float64 `json:"sugar_per_100g,omitempty"`
	ServingSizeG       *float64 `json:"serving_size_g,omitempty"`
	ServingDescription string   `json:"serving_description,omitempty"`
	NutriscoreGrade    string   `json:"nutriscore_grade,omitempty"`
}

// Client talks to the Open Food Facts API.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		http:      &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type productResponse struct {
	Status  int                    `json:"status"`
	Product map[string]interface{} `json:"product"`
}

type searchResponse struct {
	Products []map[string]interface{} `json:"products"`
}

// GetByBarcode looks up one product; errno.ErrProductNotFound when the
// barcode is unknown.
func (c *Client) GetByBarcode(ctx context.Context, barcode string) (*Product, error) {
	var resp productResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/product/%s.json", c.baseURL, url.PathEscape(barcode)), &resp); err != nil {
		return nil, err
	}
	if resp.Status != 1 {
		return nil, errno.ErrProductNotFound
	}
	p := parseProduct(barcode, resp.Product)
	if p == nil {
		return nil, errno.ErrProductNotFound
	}
	return p, nil
}

// Search returns up to pageSize products matching the query.
func (c *Client) Search(ctx context.Context, query string, pageSize int) ([]*Product, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	q := url.Values{}
	q.Set("search_terms", query)
	q.Set("page", "1")
	q.Set("page_size", strconv.Itoa(pageSize))
	q.Set("json", "1")
	q.Set("fields", searchFields)

	var resp searchResponse
	if err := c.getJSON(ctx, c.baseURL+"/search?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	products := make([]*Product, 0, len(resp.Products))
	for _, item := range resp.Products {
		barcode, _ := item["code"].(string)
		if barcode == "" {
			continue
		}
		if p := parseProduct(barcode, item); p != nil {
			products = append(products, p)
		}
	}
	return products, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("open food facts returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func parseProduct(barcode string, data map[string]interface{}) *Product {
	name, _ := data["product_name"].(string)
	if name == "" {
		name, _ = data["product_name_en"].(string)
	}
	if name == "" {
		return nil
	}

	nutriments, _ := data["nutriments"].(map[string]interface{})

	calories := nutriment(nutriments, "energy-kcal_100g")
	if calories == nil {
		// Fall back to kJ and convert.
		if kj := nutriment(nutriments, "energy_100g"); kj != nil {
			kcal := *kj / 4.184
			calories = &kcal
		}
	}

	sodium := nutriment(nutriments, "sodium_100g")
	if sodium != nil && *sodium < 10 {
		// Values under 10 are grams; the API is inconsistent here.
		mg := *sodium * 1000
		sodium = &mg
	}

	p := &Product{
		Barcode:         barcode,
		Name:            name,
		CaloriesPer100g: calories,
		ProteinPer100g:  nutriment(nutriments, "proteins_100g"),
		CarbsPer100g:    nutriment(nutriments, "carbohydrates_100g"),
		FatPer100g:      nutriment(nutriments, "fat_100g"),
		FiberPer100g:    nutriment(nutriments, "fiber_100g"),
		SodiumPer100g:   sodium,
		SugarPer100g:    nutriment(nutriments, "sugars_100g"),
	}
	p.Brand, _ = data["brands"].(string)
	p.ImageURL, _ = data["image_url"].(string)
	p.ServingDescription, _ = data["serving_size"].(string)
	p.NutriscoreGrade, _ = data["nutriscore_grade"].(string)

	switch v := data["serving_quantity"].(type) {
	case float64:
		p.ServingSizeG = &v
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			p.ServingSizeG = &f
		}
	}

	return p
}

func nutriment(nutriments map[string]interface{}, key string) *float64 {
	if nutriments == nil {
		return nil
	}
	switch v := nutriments[key].(type) {
	case float64:
		return &v
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return &f
		}
	}
	return nil
}
