package catalogService

import (
	"context"
	"strings"
	"sync"

	"ShopSmartGolang/internal/api/catalog"
	"ShopSmartGolang/internal/entity"
	contextPkg "ShopSmartGolang/pkg/context"
	redisPkg "ShopSmartGolang/pkg/redis"

	"github.com/sirupsen/logrus"
)

const catalogCacheKey = "catalog:products"

// GetAllProducts returns the full catalog snapshot. The snapshot is cached in
// Redis; on a miss every category feed is fetched concurrently, with a
// per-category fallback to the bundled static data when its remote API fails.
// An empty catalog is a valid result, never an error.
func (s *catalogService) GetAllProducts(ctx context.Context) ([]entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var cached []entity.Product
	if err := s.redisServer.GetJSON(ctx, catalogCacheKey, &cached); err == nil {
		return cached, nil
	} else if err != redisPkg.ErrNotFound {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Catalog cache read failed, fetching from source")
	}

	byCategory := s.fetchAllCategories(ctx)

	var products []entity.Product
	for _, category := range categoryOrder {
		products = append(products, byCategory[category]...)
	}

	if s.config.ExpandCatalog {
		products = expandProductSet(products)
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"count":      len(products),
		}).Info("Generated expanded product set")
	}

	if err := s.redisServer.SetJSON(ctx, catalogCacheKey, products, s.config.CacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to cache catalog snapshot")
	}

	return products, nil
}

func (s *catalogService) fetchAllCategories(ctx context.Context) map[string][]entity.Product {
	type fetcher struct {
		category string
		fetch    func(context.Context) ([]entity.Product, error)
		fallback func() []entity.Product
	}

	fetchers := []fetcher{
		{"electronics", s.storeAPI.FetchElectronics, getStaticElectronics},
		{"clothing", s.storeAPI.FetchClothing, getStaticClothing},
		{"food", s.storeAPI.FetchFood, getStaticFood},
		{"household", s.storeAPI.FetchHousehold, getStaticHousehold},
	}

	byCategory := make(map[string][]entity.Product, len(categoryOrder))

	// Medicine, stationery, books and sports have no public feed; they are
	// always served from static data.
	byCategory["medicine"] = getStaticMedicine()
	byCategory["stationery"] = getStaticStationery()
	byCategory["books"] = getStaticBooks()
	byCategory["sports"] = getStaticSports()

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, f := range fetchers {
		wg.Add(1)
		go func(f fetcher) {
			defer wg.Done()

			products, err := f.fetch(ctx)
			if err != nil {
				s.log.WithFields(logrus.Fields{
					"category": f.category,
					"error":    err.Error(),
				}).Warn("Category feed failed, using static fallback")
				products = f.fallback()
			}

			mu.Lock()
			byCategory[f.category] = products
			mu.Unlock()
		}(f)
	}

	wg.Wait()

	return byCategory
}

// GetProductsByCategory filters the catalog by substring match on the product
// category, the same loose matching the chat assistant uses. A limit of 0 or
// less means no limit.
func (s *catalogService) GetProductsByCategory(ctx context.Context, category string, limit int) ([]entity.Product, error) {
	if strings.TrimSpace(category) == "" {
		return nil, catalog.ErrInvalidCategory
	}

	products, err := s.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(category)

	var matched []entity.Product
	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Category), needle) {
			matched = append(matched, product)
			if limit > 0 && len(matched) == limit {
				break
			}
		}
	}

	return matched, nil
}

func (s *catalogService) GetProductByID(ctx context.Context, id string) (entity.Product, error) {
	products, err := s.GetAllProducts(ctx)
	if err != nil {
		return entity.Product{}, err
	}

	for _, product := range products {
		if product.ID == id {
			return product, nil
		}
	}

	return entity.Product{}, catalog.ErrProductNotFound
}

func (s *catalogService) Categories() []string {
	categories := make([]string, len(categoryOrder))
	copy(categories, categoryOrder)
	return categories
}
