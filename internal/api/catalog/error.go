package catalog

import "ShopSmartGolang/pkg/response"

var (
	ErrProductNotFound = response.NewError(404, "product not found")
	ErrInvalidCategory = response.NewError(400, "invalid category")
)
