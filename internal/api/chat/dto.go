package chat

import (
	"time"

	"ShopSmartGolang/internal/entity"
)

type CreateConversationRequest struct {
	CartID string `json:"cart_id"`
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type ConversationResponse struct {
	ID          string              `json:"id"`
	CartID      string              `json:"cart_id,omitempty"`
	Messages    []entity.Message    `json:"messages"`
	Suggestions []entity.QuickReply `json:"suggestions"`
	Busy        bool                `json:"busy"`
	CreatedAt   time.Time           `json:"created_at"`
}

func NewConversationResponse(conversation entity.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:          conversation.ID,
		CartID:      conversation.CartID,
		Messages:    conversation.Messages,
		Suggestions: conversation.Suggestions,
		Busy:        conversation.Busy,
		CreatedAt:   conversation.CreatedAt,
	}
}
