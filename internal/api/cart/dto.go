package cart

import (
	"time"

	"ShopSmartGolang/internal/entity"
)

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type CartResponse struct {
	ID        string            `json:"id"`
	Items     []entity.CartItem `json:"items"`
	Total     int               `json:"total"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func NewCartResponse(c entity.Cart) CartResponse {
	return CartResponse{
		ID:        c.ID,
		Items:     c.Items,
		Total:     c.Total(),
		UpdatedAt: c.UpdatedAt,
	}
}
