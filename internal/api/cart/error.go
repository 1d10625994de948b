package cart

import "ShopSmartGolang/pkg/response"

var (
	ErrCartNotFound     = response.NewError(404, "cart not found")
	ErrCartItemNotFound = response.NewError(404, "cart item not found")
)
