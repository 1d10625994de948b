package catalogService

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"ShopSmartGolang/internal/api/catalog"
	"ShopSmartGolang/internal/entity"
	redisPkg "ShopSmartGolang/pkg/redis"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type mockStoreAPI struct {
	mu          sync.Mutex
	electronics []entity.Product
	clothing    []entity.Product
	food        []entity.Product
	household   []entity.Product
	failAll     bool
	calls       int
}

func (m *mockStoreAPI) fetch(products []entity.Product) ([]entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.failAll {
		return nil, errors.New("feed unavailable")
	}
	return products, nil
}

func (m *mockStoreAPI) FetchElectronics(ctx context.Context) ([]entity.Product, error) {
	return m.fetch(m.electronics)
}

func (m *mockStoreAPI) FetchClothing(ctx context.Context) ([]entity.Product, error) {
	return m.fetch(m.clothing)
}

func (m *mockStoreAPI) FetchFood(ctx context.Context) ([]entity.Product, error) {
	return m.fetch(m.food)
}

func (m *mockStoreAPI) FetchHousehold(ctx context.Context) ([]entity.Product, error) {
	return m.fetch(m.household)
}

func (m *mockStoreAPI) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockRedis struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMockRedis() *mockRedis {
	return &mockRedis{data: make(map[string][]byte)}
}

func (m *mockRedis) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	payload, err := jsoniter.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = payload
	return nil
}

func (m *mockRedis) GetJSON(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	payload, ok := m.data[key]
	m.mu.Unlock()
	if !ok {
		return redisPkg.ErrNotFound
	}
	return jsoniter.Unmarshal(payload, dest)
}

func (m *mockRedis) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// --- Fixtures ---

func remoteFeeds() *mockStoreAPI {
	return &mockStoreAPI{
		electronics: []entity.Product{{ID: "remote-e1", Title: "Remote Phone", Price: 100, Category: "electronics"}},
		clothing:    []entity.Product{{ID: "remote-c1", Title: "Remote Shirt", Price: 50, Category: "clothing"}},
		food:        []entity.Product{{ID: "remote-f1", Title: "Remote Snack", Price: 10, Category: "food"}},
		household:   []entity.Product{{ID: "remote-h1", Title: "Remote Lamp", Price: 30, Category: "household"}},
	}
}

func newTestCatalogService(storeAPI *mockStoreAPI, config *CatalogConfig) ICatalogService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewCatalogService(logger, storeAPI, newMockRedis(), config)
}

func categoriesOf(products []entity.Product) []string {
	var seen []string
	for _, p := range products {
		if len(seen) == 0 || seen[len(seen)-1] != p.Category {
			seen = append(seen, p.Category)
		}
	}
	return seen
}

// --- Tests ---

func TestGetAllProductsCombinesInCategoryOrder(t *testing.T) {
	s := newTestCatalogService(remoteFeeds(), nil)

	products, err := s.GetAllProducts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)

	assert.Equal(t, []string{
		"electronics", "clothing", "food", "medicine",
		"household", "stationery", "books", "sports",
	}, categoriesOf(products))

	assert.Equal(t, "remote-e1", products[0].ID)
}

func TestGetAllProductsStaticFallbackOnFeedFailure(t *testing.T) {
	storeAPI := remoteFeeds()
	storeAPI.failAll = true
	s := newTestCatalogService(storeAPI, nil)

	products, err := s.GetAllProducts(context.Background())
	require.NoError(t, err)

	for _, p := range products {
		assert.NotContains(t, p.ID, "remote-")
	}

	electronics, err := s.GetProductsByCategory(context.Background(), "electronics", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, electronics)
}

func TestGetAllProductsStaticOnlyCategories(t *testing.T) {
	s := newTestCatalogService(remoteFeeds(), nil)

	for _, category := range []string{"medicine", "stationery", "books", "sports"} {
		products, err := s.GetProductsByCategory(context.Background(), category, 0)
		require.NoError(t, err)
		assert.NotEmpty(t, products, "category %s", category)
	}
}

func TestGetAllProductsServedFromCache(t *testing.T) {
	storeAPI := remoteFeeds()
	s := newTestCatalogService(storeAPI, nil)

	first, err := s.GetAllProducts(context.Background())
	require.NoError(t, err)
	callsAfterFirst := storeAPI.callCount()

	second, err := s.GetAllProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(first), len(second))
	assert.Equal(t, callsAfterFirst, storeAPI.callCount())
}

func TestGetProductsByCategoryLimit(t *testing.T) {
	s := newTestCatalogService(remoteFeeds(), nil)

	products, err := s.GetProductsByCategory(context.Background(), "books", 2)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestGetProductsByCategoryEmptyCategory(t *testing.T) {
	s := newTestCatalogService(remoteFeeds(), nil)

	_, err := s.GetProductsByCategory(context.Background(), "  ", 0)
	assert.ErrorIs(t, err, catalog.ErrInvalidCategory)
}

func TestGetProductByID(t *testing.T) {
	s := newTestCatalogService(remoteFeeds(), nil)

	product, err := s.GetProductByID(context.Background(), "remote-c1")
	require.NoError(t, err)
	assert.Equal(t, "Remote Shirt", product.Title)

	_, err = s.GetProductByID(context.Background(), "nope")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestCategories(t *testing.T) {
	s := newTestCatalogService(remoteFeeds(), nil)

	assert.Equal(t, []string{
		"electronics", "clothing", "food", "medicine",
		"household", "stationery", "books", "sports",
	}, s.Categories())
}

func TestExpandProductSetElectronics(t *testing.T) {
	base := entity.Product{ID: "e1", Title: "Phone", Price: 1000, Description: "A phone", Category: "electronics"}

	expanded := expandProductSet([]entity.Product{base})

	// 7 models x 4 years plus the base product.
	require.Len(t, expanded, 1+7*4)
	assert.Equal(t, base, expanded[0])

	first := expanded[1]
	assert.Equal(t, "Phone Standard (2022)", first.Title)
	assert.Equal(t, 1000, first.Price)
	assert.Equal(t, "Standard version of A phone. Released in 2022.", first.Description)

	// Pro model, 2023: price factor 1 + 0.2 + 0.1.
	pro2023 := expanded[1+4+1]
	assert.Equal(t, "Phone Pro (2023)", pro2023.Title)
	assert.Equal(t, 1300, pro2023.Price)
}

func TestExpandProductSetClothing(t *testing.T) {
	base := entity.Product{ID: "c1", Title: "Shirt", Price: 1000, Description: "A shirt.", Category: "clothing"}

	expanded := expandProductSet([]entity.Product{base})

	// 10 colors x 5 sizes plus the base product.
	require.Len(t, expanded, 1+10*5)

	first := expanded[1]
	assert.Equal(t, "Shirt - Red, Small", first.Title)
	assert.Equal(t, 1000, first.Price)

	xl := expanded[1+3]
	assert.Equal(t, "Shirt - Red, XL", xl.Title)
	assert.Equal(t, 1300, xl.Price)
}

func TestExpandProductSetGeneric(t *testing.T) {
	base := entity.Product{ID: "b1", Title: "Book", Price: 1000, Description: "A book.", Category: "books"}

	expanded := expandProductSet([]entity.Product{base})

	require.Len(t, expanded, 1+10)
	assert.Equal(t, "Book - Variant 1", expanded[1].Title)
	assert.Equal(t, 1050, expanded[1].Price)
	assert.Equal(t, "Book - Variant 10", expanded[10].Title)
	assert.Equal(t, 1500, expanded[10].Price)
}

func TestGetAllProductsExpandedWhenConfigured(t *testing.T) {
	s := newTestCatalogService(remoteFeeds(), &CatalogConfig{
		ExpandCatalog: true,
		CacheTTL:      time.Minute,
	})

	plain := newTestCatalogService(remoteFeeds(), nil)

	expanded, err := s.GetAllProducts(context.Background())
	require.NoError(t, err)

	baseline, err := plain.GetAllProducts(context.Background())
	require.NoError(t, err)

	assert.Greater(t, len(expanded), len(baseline))
}
