package storeapi

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"time"

	"ShopSmartGolang/internal/entity"

	jsoniter "github.com/json-iterator/go"
)

// The storefront sources its live catalog from two public product APIs:
// FakeStoreAPI for electronics and clothing, DummyJSON for groceries and
// household goods. Prices come back in USD and are converted to whole rupees.
const (
	defaultFakeStoreURL = "https://fakestoreapi.com"
	defaultDummyJSONURL = "https://dummyjson.com"

	usdToInr        = 75
	productsPerFeed = 20
)

type IStoreAPI interface {
	FetchElectronics(ctx context.Context) ([]entity.Product, error)
	FetchClothing(ctx context.Context) ([]entity.Product, error)
	FetchFood(ctx context.Context) ([]entity.Product, error)
	FetchHousehold(ctx context.Context) ([]entity.Product, error)
}

type storeAPI struct {
	httpClient   *http.Client
	fakeStoreURL string
	dummyJSONURL string
}

func New() IStoreAPI {
	fakeStoreURL := os.Getenv("FAKESTORE_API_URL")
	if fakeStoreURL == "" {
		fakeStoreURL = defaultFakeStoreURL
	}

	dummyJSONURL := os.Getenv("DUMMYJSON_API_URL")
	if dummyJSONURL == "" {
		dummyJSONURL = defaultDummyJSONURL
	}

	return &storeAPI{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		fakeStoreURL: fakeStoreURL,
		dummyJSONURL: dummyJSONURL,
	}
}

func (s *storeAPI) getJSON(ctx context.Context, url string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return jsoniter.Unmarshal(body, dest)
}

func toRupees(usd float64) int {
	return int(math.Round(usd * usdToInr))
}

func capProducts(products []entity.Product) []entity.Product {
	if len(products) > productsPerFeed {
		return products[:productsPerFeed]
	}
	return products
}
