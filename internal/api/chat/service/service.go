package chatService

import (
	"context"
	"sync"
	"time"

	catalogService "ShopSmartGolang/internal/api/catalog/service"
	"ShopSmartGolang/internal/entity"
	"ShopSmartGolang/pkg/nlp"
	utilsPkg "ShopSmartGolang/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IChatService interface {
	CreateConversation(ctx context.Context, cartID string) (entity.Conversation, error)
	GetConversation(ctx context.Context, id string) (entity.Conversation, error)
	SendMessage(ctx context.Context, id string, text string) (entity.Conversation, error)
	ClickSuggestion(ctx context.Context, id string, index int) (entity.Conversation, error)
	AddProductToCart(ctx context.Context, id string, productID string) (entity.Conversation, error)
	CloseConversation(ctx context.Context, id string) error
}

// CartNotifier receives cart-add events fired by the assistant. Implementations
// must not block; delivery is fire-and-forget from the chat service's side.
type CartNotifier interface {
	NotifyCartAdd(cartID string, product entity.Product, quantity int)
}

type ChatConfig struct {
	ReplyDelay time.Duration `json:"reply_delay"`
}

type chatService struct {
	log            *logrus.Logger
	classifier     nlp.IClassifier
	catalogService catalogService.ICatalogService
	cartNotifier   CartNotifier
	utils          utilsPkg.IUtils
	config         *ChatConfig

	mu            sync.RWMutex
	conversations map[string]*entity.Conversation
}

const welcomeMessage = "Hello! I'm your ShopSmart assistant. I can help you find products in electronics, food, clothing, medicine, household goods, stationery, books, and sports equipment. I can also add items to your cart. What are you looking for today?"

func NewChatService(
	log *logrus.Logger,
	classifier nlp.IClassifier,
	cs catalogService.ICatalogService,
	cartNotifier CartNotifier,
	utils utilsPkg.IUtils,
	config *ChatConfig,
) IChatService {
	if config == nil {
		config = &ChatConfig{ReplyDelay: time.Second}
	}

	return &chatService{
		log:            log,
		classifier:     classifier,
		catalogService: cs,
		cartNotifier:   cartNotifier,
		utils:          utils,
		config:         config,
		conversations:  make(map[string]*entity.Conversation),
	}
}
