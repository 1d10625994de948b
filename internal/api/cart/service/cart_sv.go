package cartService

import (
	"context"
	"time"

	"ShopSmartGolang/internal/api/cart"
	"ShopSmartGolang/internal/entity"
	contextPkg "ShopSmartGolang/pkg/context"
	redisPkg "ShopSmartGolang/pkg/redis"

	"github.com/sirupsen/logrus"
)

const cartKeyPrefix = "cart:"

func (s *cartService) GetCart(ctx context.Context, cartID string) (entity.Cart, error) {
	var stored entity.Cart
	if err := s.redisServer.GetJSON(ctx, cartKeyPrefix+cartID, &stored); err != nil {
		if err == redisPkg.ErrNotFound {
			return entity.Cart{}, cart.ErrCartNotFound
		}
		return entity.Cart{}, err
	}

	return stored, nil
}

// AddItem puts a product in the cart, incrementing the quantity when the
// product is already there, and broadcasts the cart-add event to connected
// storefront clients.
func (s *cartService) AddItem(ctx context.Context, cartID string, productID string, quantity int) (entity.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}

	product, err := s.catalogService.GetProductByID(ctx, productID)
	if err != nil {
		return entity.Cart{}, err
	}

	stored, err := s.applyAdd(ctx, cartID, product, quantity)
	if err != nil {
		return entity.Cart{}, err
	}

	s.hub.BroadcastCartAdd(entity.CartAddEvent{
		CartID:   cartID,
		Product:  product,
		Quantity: quantity,
	})

	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"cart_id":    cartID,
		"product_id": productID,
		"quantity":   quantity,
	}).Info("Product added to cart")

	return stored, nil
}

func (s *cartService) RemoveItem(ctx context.Context, cartID string, productID string) (entity.Cart, error) {
	stored, err := s.GetCart(ctx, cartID)
	if err != nil {
		return entity.Cart{}, err
	}

	found := false
	items := stored.Items[:0]
	for _, item := range stored.Items {
		if item.Product.ID == productID {
			found = true
			continue
		}
		items = append(items, item)
	}

	if !found {
		return entity.Cart{}, cart.ErrCartItemNotFound
	}

	stored.Items = items
	stored.UpdatedAt = time.Now()

	if err := s.redisServer.SetJSON(ctx, cartKeyPrefix+cartID, stored, 0); err != nil {
		return entity.Cart{}, err
	}

	return stored, nil
}

// NotifyCartAdd is the chat assistant's fire-and-forget channel. The event is
// always broadcast; persistence only happens when the conversation carries a
// cart id, and a storage failure is logged rather than surfaced.
func (s *cartService) NotifyCartAdd(cartID string, product entity.Product, quantity int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if cartID != "" {
		if _, err := s.applyAdd(ctx, cartID, product, quantity); err != nil {
			s.log.WithFields(logrus.Fields{
				"cart_id":    cartID,
				"product_id": product.ID,
				"error":      err.Error(),
			}).Warn("Failed to persist cart-add from chat")
		}
	}

	s.hub.BroadcastCartAdd(entity.CartAddEvent{
		CartID:   cartID,
		Product:  product,
		Quantity: quantity,
	})
}

func (s *cartService) applyAdd(ctx context.Context, cartID string, product entity.Product, quantity int) (entity.Cart, error) {
	var stored entity.Cart
	err := s.redisServer.GetJSON(ctx, cartKeyPrefix+cartID, &stored)
	if err != nil && err != redisPkg.ErrNotFound {
		return entity.Cart{}, err
	}
	stored.ID = cartID

	found := false
	for i := range stored.Items {
		if stored.Items[i].Product.ID == product.ID {
			stored.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		stored.Items = append(stored.Items, entity.CartItem{
			Product:  product,
			Quantity: quantity,
		})
	}
	stored.UpdatedAt = time.Now()

	if err := s.redisServer.SetJSON(ctx, cartKeyPrefix+cartID, stored, 0); err != nil {
		return entity.Cart{}, err
	}

	return stored, nil
}
