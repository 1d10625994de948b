package entity

import "time"

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c *Cart) Total() int {
	total := 0
	for _, item := range c.Items {
		total += item.Product.Price * item.Quantity
	}
	return total
}

// CartAddEvent is the fire-and-forget notification emitted whenever a product
// is added to a cart, from the chat assistant or the storefront UI alike.
type CartAddEvent struct {
	CartID   string  `json:"cart_id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
