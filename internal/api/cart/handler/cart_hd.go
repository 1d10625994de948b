package cartHandler

import (
	"time"

	"ShopSmartGolang/internal/api/cart"
	contextPkg "ShopSmartGolang/pkg/context"
	"ShopSmartGolang/pkg/handlerUtil"
	"ShopSmartGolang/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *CartHandler) HandleGetCart(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	stored, err := h.cartService.GetCart(c, ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_cart")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, cart.NewCartResponse(stored))
	}
}

func (h *CartHandler) HandleAddItem(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing add cart item request")

	var req cart.AddItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	stored, err := h.cartService.AddItem(c, ctx.Params("id"), req.ProductID, req.Quantity)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_cart_item")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, cart.NewCartResponse(stored))
	}
}

func (h *CartHandler) HandleRemoveItem(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	stored, err := h.cartService.RemoveItem(c, ctx.Params("id"), ctx.Params("productId"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "remove_cart_item")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, cart.NewCartResponse(stored))
	}
}
