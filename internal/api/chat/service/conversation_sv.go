package chatService

import (
	"context"
	"strings"
	"time"

	"ShopSmartGolang/internal/api/chat"
	"ShopSmartGolang/internal/entity"
	contextPkg "ShopSmartGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *chatService) CreateConversation(ctx context.Context, cartID string) (entity.Conversation, error) {
	requestID := contextPkg.GetRequestID(ctx)

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.Conversation{}, err
	}

	conversation := &entity.Conversation{
		ID:     id,
		CartID: cartID,
		Messages: []entity.Message{
			{
				ID:        1,
				Text:      welcomeMessage,
				Sender:    entity.SenderBot,
				Timestamp: time.Now(),
			},
		},
		Suggestions: []entity.QuickReply{},
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	s.conversations[id] = conversation
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"request_id":      requestID,
		"conversation_id": id,
	}).Info("Conversation created")

	return snapshot(conversation), nil
}

func (s *chatService) GetConversation(ctx context.Context, id string) (entity.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conversation, ok := s.conversations[id]
	if !ok {
		return entity.Conversation{}, chat.ErrConversationNotFound
	}

	return snapshot(conversation), nil
}

// SendMessage appends the user message, marks the conversation busy and
// schedules the assistant reply after the configured delay. Whitespace-only
// input is dropped without touching the conversation.
func (s *chatService) SendMessage(ctx context.Context, id string, text string) (entity.Conversation, error) {
	requestID := contextPkg.GetRequestID(ctx)

	s.mu.Lock()
	conversation, ok := s.conversations[id]
	if !ok {
		s.mu.Unlock()
		return entity.Conversation{}, chat.ErrConversationNotFound
	}

	if strings.TrimSpace(text) == "" {
		result := snapshot(conversation)
		s.mu.Unlock()
		return result, nil
	}

	conversation.Messages = append(conversation.Messages, entity.Message{
		ID:        conversation.LastMessageID() + 1,
		Text:      text,
		Sender:    entity.SenderUser,
		Timestamp: time.Now(),
	})
	conversation.Busy = true
	result := snapshot(conversation)
	s.mu.Unlock()

	go s.deliverReply(requestID, id, text)

	return result, nil
}

func (s *chatService) deliverReply(requestID string, conversationID string, input string) {
	time.Sleep(s.config.ReplyDelay)

	fetchCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	catalog, err := s.catalogService.GetAllProducts(fetchCtx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"conversation_id": conversationID,
			"error":           err.Error(),
		}).Warn("Catalog unavailable, composing reply against empty catalog")
		catalog = nil
	}

	reply := s.composeReply(input, catalog)

	s.mu.Lock()
	conversation, ok := s.conversations[conversationID]
	if !ok {
		// Conversation was closed while the reply was pending.
		s.mu.Unlock()
		return
	}

	conversation.Messages = append(conversation.Messages, entity.Message{
		ID:        conversation.LastMessageID() + 1,
		Text:      reply.text,
		Sender:    entity.SenderBot,
		Timestamp: time.Now(),
		Products:  reply.products,
		Action:    reply.action,
	})
	conversation.Busy = false
	if reply.replaceSuggestions {
		conversation.Suggestions = reply.suggestions
	}
	cartID := conversation.CartID
	s.mu.Unlock()

	if reply.cartProduct != nil && s.cartNotifier != nil {
		s.cartNotifier.NotifyCartAdd(cartID, *reply.cartProduct, 1)
	}

	s.log.WithFields(logrus.Fields{
		"request_id":      requestID,
		"conversation_id": conversationID,
		"products":        len(reply.products),
	}).Debug("Assistant reply delivered")
}

// ClickSuggestion replays a quick reply: the label becomes a synthetic user
// message and the precomputed products are shown directly, without going back
// through the classifier.
func (s *chatService) ClickSuggestion(ctx context.Context, id string, index int) (entity.Conversation, error) {
	requestID := contextPkg.GetRequestID(ctx)

	s.mu.Lock()
	conversation, ok := s.conversations[id]
	if !ok {
		s.mu.Unlock()
		return entity.Conversation{}, chat.ErrConversationNotFound
	}

	if index < 0 || index >= len(conversation.Suggestions) {
		s.mu.Unlock()
		return entity.Conversation{}, chat.ErrSuggestionNotFound
	}

	suggestion := conversation.Suggestions[index]
	conversation.Suggestions = []entity.QuickReply{}
	conversation.Messages = append(conversation.Messages, entity.Message{
		ID:        conversation.LastMessageID() + 1,
		Text:      suggestion.Label,
		Sender:    entity.SenderUser,
		Timestamp: time.Now(),
	})
	conversation.Busy = true
	result := snapshot(conversation)
	s.mu.Unlock()

	go s.deliverSuggestionReply(requestID, id, suggestion)

	return result, nil
}

func (s *chatService) deliverSuggestionReply(requestID string, conversationID string, suggestion entity.QuickReply) {
	time.Sleep(s.config.ReplyDelay)

	s.mu.Lock()
	conversation, ok := s.conversations[conversationID]
	if !ok {
		s.mu.Unlock()
		return
	}

	conversation.Messages = append(conversation.Messages, entity.Message{
		ID:        conversation.LastMessageID() + 1,
		Text:      "Here are some " + suggestion.Category + " products you might like:",
		Sender:    entity.SenderBot,
		Timestamp: time.Now(),
		Products:  suggestion.Products,
	})
	conversation.Busy = false
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"request_id":      requestID,
		"conversation_id": conversationID,
		"category":        suggestion.Category,
	}).Debug("Suggestion reply delivered")
}

// AddProductToCart is the manual path: the shopper picked a product from an
// earlier reply. The cart event and the confirmation message go out together.
func (s *chatService) AddProductToCart(ctx context.Context, id string, productID string) (entity.Conversation, error) {
	requestID := contextPkg.GetRequestID(ctx)

	product, err := s.catalogService.GetProductByID(ctx, productID)
	if err != nil {
		return entity.Conversation{}, err
	}

	s.mu.Lock()
	conversation, ok := s.conversations[id]
	if !ok {
		s.mu.Unlock()
		return entity.Conversation{}, chat.ErrConversationNotFound
	}

	conversation.Messages = append(conversation.Messages, entity.Message{
		ID:        conversation.LastMessageID() + 1,
		Text:      "Added " + product.Title + " to your cart for " + s.utils.FormatRupees(product.Price) + ".",
		Sender:    entity.SenderBot,
		Timestamp: time.Now(),
		Action:    entity.MessageActionAddedToCart,
	})
	cartID := conversation.CartID
	result := snapshot(conversation)
	s.mu.Unlock()

	if s.cartNotifier != nil {
		s.cartNotifier.NotifyCartAdd(cartID, product, 1)
	}

	s.log.WithFields(logrus.Fields{
		"request_id":      requestID,
		"conversation_id": id,
		"product_id":      productID,
	}).Info("Product added to cart from chat")

	return result, nil
}

func (s *chatService) CloseConversation(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[id]; !ok {
		return chat.ErrConversationNotFound
	}

	delete(s.conversations, id)

	s.log.WithFields(logrus.Fields{
		"request_id":      requestID,
		"conversation_id": id,
	}).Info("Conversation closed")

	return nil
}

// snapshot copies the conversation so callers never share the live slices.
func snapshot(conversation *entity.Conversation) entity.Conversation {
	copied := *conversation
	copied.Messages = append([]entity.Message(nil), conversation.Messages...)
	copied.Suggestions = append([]entity.QuickReply(nil), conversation.Suggestions...)
	return copied
}
