package catalogHandler

import (
	"time"

	"ShopSmartGolang/internal/api/catalog"
	contextPkg "ShopSmartGolang/pkg/context"
	"ShopSmartGolang/pkg/handlerUtil"
	"ShopSmartGolang/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *CatalogHandler) HandleGetProducts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get products request")

	category := ctx.Query("category")
	limit := ctx.QueryInt("limit")

	if category != "" {
		matched, err := h.catalogService.GetProductsByCategory(c, category, limit)
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_products_by_category")
		}
		response := catalog.ProductListResponse{
			Products: matched,
			Total:    len(matched),
			Category: category,
		}
		select {
		case <-c.Done():
			return errHandler.HandleRequestTimeout(ctx)
		default:
			return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
		}
	}

	all, err := h.catalogService.GetAllProducts(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_products")
	}

	response := catalog.ProductListResponse{
		Products: all,
		Total:    len(all),
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *CatalogHandler) HandleGetProductByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	product, err := h.catalogService.GetProductByID(c, ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_product_by_id")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, product)
	}
}

func (h *CatalogHandler) HandleGetCategories(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get categories request")

	response := catalog.CategoryListResponse{
		Categories: h.catalogService.Categories(),
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
}
