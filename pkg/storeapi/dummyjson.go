package storeapi

import (
	"context"
	"fmt"

	"ShopSmartGolang/internal/entity"
)

type dummyJSONProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Thumbnail   string  `json:"thumbnail"`
}

type dummyJSONResponse struct {
	Products []dummyJSONProduct `json:"products"`
}

func (s *storeAPI) fetchDummyJSONCategory(ctx context.Context, apiCategory string) ([]dummyJSONProduct, error) {
	endpoint := fmt.Sprintf("%s/products/category/%s", s.dummyJSONURL, apiCategory)

	var resp dummyJSONResponse
	if err := s.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	return resp.Products, nil
}

func (s *storeAPI) FetchFood(ctx context.Context) ([]entity.Product, error) {
	items, err := s.fetchDummyJSONCategory(ctx, "groceries")
	if err != nil {
		return nil, err
	}

	products := make([]entity.Product, 0, len(items))
	for _, item := range items {
		products = append(products, entity.Product{
			ID:          fmt.Sprintf("food-%d", item.ID),
			Title:       item.Title,
			Price:       toRupees(item.Price),
			Description: item.Description,
			Category:    "food",
			Image:       item.Thumbnail,
		})
	}

	return capProducts(products), nil
}

func (s *storeAPI) FetchHousehold(ctx context.Context) ([]entity.Product, error) {
	decoration, err := s.fetchDummyJSONCategory(ctx, "home-decoration")
	if err != nil {
		return nil, err
	}

	furniture, err := s.fetchDummyJSONCategory(ctx, "furniture")
	if err != nil {
		return nil, err
	}

	items := append(decoration, furniture...)

	products := make([]entity.Product, 0, len(items))
	for _, item := range items {
		products = append(products, entity.Product{
			ID:          fmt.Sprintf("household-%d", item.ID),
			Title:       item.Title,
			Price:       toRupees(item.Price),
			Description: item.Description,
			Category:    "household",
			Image:       item.Thumbnail,
		})
	}

	return capProducts(products), nil
}
