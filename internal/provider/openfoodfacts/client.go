package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

var ErrProductNotFound = fmt.Errorf("product not found")

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type offResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName string             `json:"product_name"`
		ServingSize string             `json:"serving_size"`
		Nutriments  map[string]float64 `json:"nutriments"`
	} `json:"product"`
}

// LookupProduct resolves a barcode to the product name, energy per 100 g,
// and serving size. A barcode the service does not know returns
// ErrProductNotFound.
func (c *Client) LookupProduct(ctx context.Context, barcode string) (model.Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return model.Product{}, fmt.Errorf("barcode is required")
	}
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	url := fmt.Sprintf("%s/api/v0/product/%s.json", base, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Product{}, fmt.Errorf("create openfoodfacts request: %w", err)
	}
	req.Header.Set("User-Agent", "fitcoach-cli/1.0 (+https://github.com/irfanyen1363/fitcoach-cli)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return model.Product{}, fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Product{}, fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Product{}, fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}

	var parsed offResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return model.Product{}, fmt.Errorf("decode openfoodfacts response: %w", err)
	}
	if parsed.Status != 1 {
		return model.Product{}, ErrProductNotFound
	}

	name := strings.TrimSpace(parsed.Product.ProductName)
	if name == "" {
		name = "Unknown Product"
	}
	serving := strings.TrimSpace(parsed.Product.ServingSize)
	if serving == "" {
		serving = "100g"
	}
	return model.Product{
		Name:           name,
		CaloriesPer100: parsed.Product.Nutriments["energy-kcal_100g"],
		ServingSize:    serving,
	}, nil
}
