package cartService

import (
	"context"

	catalogService "ShopSmartGolang/internal/api/catalog/service"
	"ShopSmartGolang/internal/entity"
	redisPkg "ShopSmartGolang/pkg/redis"
	websocketPkg "ShopSmartGolang/pkg/websocket"

	"github.com/sirupsen/logrus"
)

type ICartService interface {
	GetCart(ctx context.Context, cartID string) (entity.Cart, error)
	AddItem(ctx context.Context, cartID string, productID string, quantity int) (entity.Cart, error)
	RemoveItem(ctx context.Context, cartID string, productID string) (entity.Cart, error)

	// NotifyCartAdd satisfies the chat service's cart notifier.
	NotifyCartAdd(cartID string, product entity.Product, quantity int)
}

type cartService struct {
	log            *logrus.Logger
	redisServer    redisPkg.IRedis
	catalogService catalogService.ICatalogService
	hub            websocketPkg.IHub
}

func NewCartService(
	log *logrus.Logger,
	redisServer redisPkg.IRedis,
	cs catalogService.ICatalogService,
	hub websocketPkg.IHub,
) ICartService {
	return &cartService{
		log:            log,
		redisServer:    redisServer,
		catalogService: cs,
		hub:            hub,
	}
}
