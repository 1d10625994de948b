package catalogHandler

import (
	catalogService "ShopSmartGolang/internal/api/catalog/service"
	"ShopSmartGolang/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	log            *logrus.Logger
	catalogService catalogService.ICatalogService
	middleware     middleware.Middleware
}

func New(
	log *logrus.Logger,
	cs catalogService.ICatalogService,
	middleware middleware.Middleware) *CatalogHandler {
	return &CatalogHandler{
		log:            log,
		catalogService: cs,
		middleware:     middleware,
	}
}

func (h *CatalogHandler) Start(srv fiber.Router) {
	catalog := srv.Group("/catalog")
	catalog.Get("/products", h.HandleGetProducts)
	catalog.Get("/products/:id", h.HandleGetProductByID)
	catalog.Get("/categories", h.HandleGetCategories)
}
