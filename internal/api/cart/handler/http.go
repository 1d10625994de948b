package cartHandler

import (
	cartService "ShopSmartGolang/internal/api/cart/service"
	"ShopSmartGolang/internal/middleware"
	websocketPkg "ShopSmartGolang/pkg/websocket"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type CartHandler struct {
	log         *logrus.Logger
	cartService cartService.ICartService
	validator   *validator.Validate
	middleware  middleware.Middleware
	hub         websocketPkg.IHub
}

func New(
	log *logrus.Logger,
	cs cartService.ICartService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	hub websocketPkg.IHub) *CartHandler {
	return &CartHandler{
		log:         log,
		cartService: cs,
		validator:   validate,
		middleware:  middleware,
		hub:         hub,
	}
}

func (h *CartHandler) Start(srv fiber.Router) {
	carts := srv.Group("/cart")
	carts.Get("/ws", h.upgradeRequired, websocket.New(h.HandleEventStream))
	carts.Get("/:id", h.HandleGetCart)
	carts.Post("/:id/items", h.HandleAddItem)
	carts.Delete("/:id/items/:productId", h.HandleRemoveItem)
}

func (h *CartHandler) upgradeRequired(ctx *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(ctx) {
		return ctx.Next()
	}
	return fiber.ErrUpgradeRequired
}
