package catalog

import "ShopSmartGolang/internal/entity"

type ProductListResponse struct {
	Products []entity.Product `json:"products"`
	Total    int              `json:"total"`
	Category string           `json:"category,omitempty"`
}

type CategoryListResponse struct {
	Categories []string `json:"categories"`
}
