package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	cartHandler "ShopSmartGolang/internal/api/cart/handler"
	cartService "ShopSmartGolang/internal/api/cart/service"
	catalogHandler "ShopSmartGolang/internal/api/catalog/handler"
	catalogService "ShopSmartGolang/internal/api/catalog/service"
	chatHandler "ShopSmartGolang/internal/api/chat/handler"
	chatService "ShopSmartGolang/internal/api/chat/service"
	"ShopSmartGolang/internal/middleware"
	"ShopSmartGolang/pkg/nlp"
	"ShopSmartGolang/pkg/redis"
	"ShopSmartGolang/pkg/storeapi"
	"ShopSmartGolang/pkg/utils"
	websocketPkg "ShopSmartGolang/pkg/websocket"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	handlers    []handler
	redisServer redis.IRedis
	storeAPI    storeapi.IStoreAPI
	hub         websocketPkg.IHub
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithStoreAPI(storeAPI storeapi.IStoreAPI) ServerOption {
	return func(s *Server) error {
		s.storeAPI = storeAPI
		return nil
	}
}

func WithWebsocketHub(hub websocketPkg.IHub) ServerOption {
	return func(s *Server) error {
		s.hub = hub
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Catalog Domain
	catalogConfig := &catalogService.CatalogConfig{
		ExpandCatalog: envBool("CATALOG_EXPAND", false),
		CacheTTL:      time.Duration(envInt("CATALOG_CACHE_TTL_MIN", 10)) * time.Minute,
	}
	catalogServices := catalogService.NewCatalogService(s.log, s.storeAPI, s.redisServer, catalogConfig)
	catalogHandlers := catalogHandler.New(s.log, catalogServices, s.middleware)

	// Cart Domain
	cartServices := cartService.NewCartService(s.log, s.redisServer, catalogServices, s.hub)
	cartHandlers := cartHandler.New(s.log, cartServices, s.validator, s.middleware, s.hub)

	// Chat Assistant Domain
	chatConfig := &chatService.ChatConfig{
		ReplyDelay: time.Duration(envInt("CHAT_REPLY_DELAY_MS", 1000)) * time.Millisecond,
	}
	classifier := nlp.NewClassifier()
	chatServices := chatService.NewChatService(s.log, classifier, catalogServices, cartServices, s.utils, chatConfig)
	chatHandlers := chatHandler.New(s.log, chatServices, s.validator, s.middleware)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, catalogHandlers, cartHandlers, chatHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	router := s.engine.Group("/api/v1")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}
