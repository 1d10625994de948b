package catalogService

import (
	"context"
	"time"

	"ShopSmartGolang/internal/entity"
	redisPkg "ShopSmartGolang/pkg/redis"
	"ShopSmartGolang/pkg/storeapi"

	"github.com/sirupsen/logrus"
)

type ICatalogService interface {
	GetAllProducts(ctx context.Context) ([]entity.Product, error)
	GetProductsByCategory(ctx context.Context, category string, limit int) ([]entity.Product, error)
	GetProductByID(ctx context.Context, id string) (entity.Product, error)
	Categories() []string
}

type CatalogConfig struct {
	ExpandCatalog bool          `json:"expand_catalog"`
	CacheTTL      time.Duration `json:"cache_ttl"`
}

type catalogService struct {
	log         *logrus.Logger
	storeAPI    storeapi.IStoreAPI
	redisServer redisPkg.IRedis
	config      *CatalogConfig
}

// Catalog categories in the storefront's display order. Combination of the
// fetched feeds follows this order so the "first N in catalog order" rules in
// the chat assistant stay deterministic.
var categoryOrder = []string{
	"electronics",
	"clothing",
	"food",
	"medicine",
	"household",
	"stationery",
	"books",
	"sports",
}

func NewCatalogService(
	log *logrus.Logger,
	storeAPI storeapi.IStoreAPI,
	redisServer redisPkg.IRedis,
	config *CatalogConfig,
) ICatalogService {
	if config == nil {
		config = &CatalogConfig{CacheTTL: 10 * time.Minute}
	}

	return &catalogService{
		log:         log,
		storeAPI:    storeAPI,
		redisServer: redisServer,
		config:      config,
	}
}
