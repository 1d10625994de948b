package entity

import "time"

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type MessageAction string

const (
	MessageActionAddedToCart MessageAction = "added_to_cart"
)

// Message is append-only: once part of a conversation it is never mutated.
type Message struct {
	ID        int           `json:"id"`
	Text      string        `json:"text"`
	Sender    Sender        `json:"sender"`
	Timestamp time.Time     `json:"timestamp"`
	Products  []Product     `json:"products,omitempty"`
	Action    MessageAction `json:"action,omitempty"`
}

// QuickReply is a pre-canned clickable prompt. Products are precomputed at
// suggestion-creation time; a click shows them directly without going back
// through the classifier.
type QuickReply struct {
	Label    string    `json:"label"`
	Category string    `json:"category"`
	Products []Product `json:"products,omitempty"`
}

// Conversation lives only for the duration of one chat session. Busy is true
// between a user message being appended and the corresponding bot reply
// arriving; it drives the typing indicator and must be false at rest.
type Conversation struct {
	ID          string       `json:"id"`
	CartID      string       `json:"cart_id,omitempty"`
	Messages    []Message    `json:"messages"`
	Suggestions []QuickReply `json:"suggestions"`
	Busy        bool         `json:"busy"`
	CreatedAt   time.Time    `json:"created_at"`
}

// LastMessageID returns the highest message id in the conversation, 0 when
// empty. Message ids are strictly increasing, so this is always the tail.
func (c *Conversation) LastMessageID() int {
	if len(c.Messages) == 0 {
		return 0
	}
	return c.Messages[len(c.Messages)-1].ID
}
