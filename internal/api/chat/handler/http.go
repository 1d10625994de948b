package chatHandler

import (
	chatService "ShopSmartGolang/internal/api/chat/service"
	"ShopSmartGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	chatService chatService.IChatService
	validator   *validator.Validate
	middleware  middleware.Middleware
}

func New(
	log *logrus.Logger,
	cs chatService.IChatService,
	validate *validator.Validate,
	middleware middleware.Middleware) *ChatHandler {
	return &ChatHandler{
		log:         log,
		chatService: cs,
		validator:   validate,
		middleware:  middleware,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	conversations := srv.Group("/chat/conversations")
	conversations.Post("/", h.HandleCreateConversation)
	conversations.Get("/:id", h.HandleGetConversation)
	conversations.Post("/:id/messages", h.HandleSendMessage)
	conversations.Post("/:id/suggestions/:index", h.HandleClickSuggestion)
	conversations.Post("/:id/cart", h.HandleAddProductToCart)
	conversations.Delete("/:id", h.HandleCloseConversation)
}
