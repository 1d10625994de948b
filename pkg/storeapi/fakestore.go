package storeapi

import (
	"context"
	"fmt"
	"net/url"

	"ShopSmartGolang/internal/entity"
)

type fakeStoreProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

func (s *storeAPI) fetchFakeStoreCategory(ctx context.Context, apiCategory string) ([]fakeStoreProduct, error) {
	endpoint := fmt.Sprintf("%s/products/category/%s", s.fakeStoreURL, url.PathEscape(apiCategory))

	var products []fakeStoreProduct
	if err := s.getJSON(ctx, endpoint, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (s *storeAPI) FetchElectronics(ctx context.Context) ([]entity.Product, error) {
	items, err := s.fetchFakeStoreCategory(ctx, "electronics")
	if err != nil {
		return nil, err
	}

	products := make([]entity.Product, 0, len(items))
	for _, item := range items {
		products = append(products, entity.Product{
			ID:          fmt.Sprintf("electronics-%d", item.ID),
			Title:       item.Title,
			Price:       toRupees(item.Price),
			Description: item.Description,
			Category:    "electronics",
			Image:       item.Image,
		})
	}

	return capProducts(products), nil
}

func (s *storeAPI) FetchClothing(ctx context.Context) ([]entity.Product, error) {
	mens, err := s.fetchFakeStoreCategory(ctx, "men's clothing")
	if err != nil {
		return nil, err
	}

	womens, err := s.fetchFakeStoreCategory(ctx, "women's clothing")
	if err != nil {
		return nil, err
	}

	items := append(mens, womens...)

	products := make([]entity.Product, 0, len(items))
	for _, item := range items {
		products = append(products, entity.Product{
			ID:          fmt.Sprintf("clothing-%d", item.ID),
			Title:       item.Title,
			Price:       toRupees(item.Price),
			Description: item.Description,
			Category:    "clothing",
			Image:       item.Image,
		})
	}

	return capProducts(products), nil
}
