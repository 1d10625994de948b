package chat

import "ShopSmartGolang/pkg/response"

var (
	ErrConversationNotFound = response.NewError(404, "conversation not found")
	ErrSuggestionNotFound   = response.NewError(404, "suggestion not found")
)
