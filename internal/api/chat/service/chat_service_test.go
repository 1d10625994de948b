package chatService

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"ShopSmartGolang/internal/api/catalog"
	"ShopSmartGolang/internal/api/chat"
	"ShopSmartGolang/internal/entity"
	"ShopSmartGolang/pkg/nlp"
	utilsPkg "ShopSmartGolang/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type mockCatalog struct {
	products []entity.Product
}

func (m *mockCatalog) GetAllProducts(ctx context.Context) ([]entity.Product, error) {
	return m.products, nil
}

func (m *mockCatalog) GetProductsByCategory(ctx context.Context, category string, limit int) ([]entity.Product, error) {
	var matched []entity.Product
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.Category), strings.ToLower(category)) {
			matched = append(matched, p)
			if limit > 0 && len(matched) == limit {
				break
			}
		}
	}
	return matched, nil
}

func (m *mockCatalog) GetProductByID(ctx context.Context, id string) (entity.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Product{}, catalog.ErrProductNotFound
}

func (m *mockCatalog) Categories() []string {
	return []string{"electronics", "clothing", "food", "household"}
}

type mockNotifier struct {
	mu     sync.Mutex
	events []entity.CartAddEvent
}

func (m *mockNotifier) NotifyCartAdd(cartID string, product entity.Product, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, entity.CartAddEvent{
		CartID:   cartID,
		Product:  product,
		Quantity: quantity,
	})
}

func (m *mockNotifier) Events() []entity.CartAddEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entity.CartAddEvent(nil), m.events...)
}

// --- Fixtures ---

func testCatalog() []entity.Product {
	return []entity.Product{
		{ID: "e1", Title: "Smartphone X", Price: 74999, Category: "electronics"},
		{ID: "e2", Title: "Laptop Slim", Price: 97499, Category: "electronics"},
		{ID: "e3", Title: "Headphones", Price: 8999, Category: "electronics"},
		{ID: "e4", Title: "Smart TV", Price: 44999, Category: "electronics"},
		{ID: "e5", Title: "Camera", Price: 32999, Category: "electronics"},
		{ID: "e6", Title: "Tablet", Price: 24999, Category: "electronics"},
		{ID: "c1", Title: "T-Shirt", Price: 1874, Category: "clothing"},
		{ID: "c2", Title: "Jeans", Price: 4499, Category: "clothing"},
		{ID: "c3", Title: "Jacket", Price: 9749, Category: "clothing"},
		{ID: "c4", Title: "Hoodie", Price: 2999, Category: "clothing"},
		{ID: "f1", Title: "Fruit Basket", Price: 2624, Category: "food"},
		{ID: "h1", Title: "Candle Set", Price: 1874, Category: "household"},
		{ID: "h2", Title: "Wall Clock", Price: 2999, Category: "household"},
	}
}

func newTestService(products []entity.Product, notifier CartNotifier) IChatService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewChatService(
		logger,
		nlp.NewClassifier(),
		&mockCatalog{products: products},
		notifier,
		utilsPkg.New(),
		&ChatConfig{ReplyDelay: 10 * time.Millisecond},
	)
}

func awaitReply(t *testing.T, s IChatService, id string, wantMessages int) entity.Conversation {
	t.Helper()

	var conversation entity.Conversation
	require.Eventually(t, func() bool {
		var err error
		conversation, err = s.GetConversation(context.Background(), id)
		if err != nil {
			return false
		}
		return len(conversation.Messages) == wantMessages && !conversation.Busy
	}, time.Second, 5*time.Millisecond)

	return conversation
}

// --- Tests ---

func TestCreateConversationSeedsWelcome(t *testing.T) {
	s := newTestService(testCatalog(), &mockNotifier{})

	conversation, err := s.CreateConversation(context.Background(), "cart-1")
	require.NoError(t, err)

	assert.NotEmpty(t, conversation.ID)
	assert.Equal(t, "cart-1", conversation.CartID)
	assert.False(t, conversation.Busy)
	assert.Empty(t, conversation.Suggestions)
	require.Len(t, conversation.Messages, 1)
	assert.Equal(t, 1, conversation.Messages[0].ID)
	assert.Equal(t, entity.SenderBot, conversation.Messages[0].Sender)
	assert.Equal(t, welcomeMessage, conversation.Messages[0].Text)
}

func TestSendMessageAddToCartWithCategory(t *testing.T) {
	notifier := &mockNotifier{}
	s := newTestService(testCatalog(), notifier)

	conversation, err := s.CreateConversation(context.Background(), "cart-1")
	require.NoError(t, err)

	updated, err := s.SendMessage(context.Background(), conversation.ID, "I want to buy a laptop")
	require.NoError(t, err)
	assert.True(t, updated.Busy)
	require.Len(t, updated.Messages, 2)
	assert.Equal(t, entity.SenderUser, updated.Messages[1].Sender)

	final := awaitReply(t, s, conversation.ID, 3)
	reply := final.Messages[2]
	assert.Equal(t, entity.SenderBot, reply.Sender)
	assert.Equal(t, "I've added Smartphone X to your cart for ₹74999. Would you like to continue shopping?", reply.Text)
	assert.Equal(t, entity.MessageActionAddedToCart, reply.Action)
	require.Len(t, reply.Products, 1)
	assert.Equal(t, "e1", reply.Products[0].ID)

	events := notifier.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "cart-1", events[0].CartID)
	assert.Equal(t, "e1", events[0].Product.ID)
	assert.Equal(t, 1, events[0].Quantity)
}

func TestSendMessageSearchWithCategory(t *testing.T) {
	s := newTestService(testCatalog(), &mockNotifier{})

	conversation, err := s.CreateConversation(context.Background(), "")
	require.NoError(t, err)

	_, err = s.SendMessage(context.Background(), conversation.ID, "show me clothing items")
	require.NoError(t, err)

	final := awaitReply(t, s, conversation.ID, 3)
	reply := final.Messages[2]
	assert.Equal(t, "Here are some clothing products I found for you:", reply.Text)
	require.Len(t, reply.Products, 3)
	for _, p := range reply.Products {
		assert.Equal(t, "clothing", p.Category)
	}
	assert.Equal(t, []string{"c1", "c2", "c3"}, []string{reply.Products[0].ID, reply.Products[1].ID, reply.Products[2].ID})
}

func TestSendMessageExploreWithCategory(t *testing.T) {
	s := newTestService(testCatalog(), &mockNotifier{})

	conversation, err := s.CreateConversation(context.Background(), "")
	require.NoError(t, err)

	_, err = s.SendMessage(context.Background(), conversation.ID, "browse electronics")
	require.NoError(t, err)

	final := awaitReply(t, s, conversation.ID, 3)
	reply := final.Messages[2]
	assert.Equal(t, "Here's a selection of our electronics products:", reply.Text)
	assert.Len(t, reply.Products, 5)
}

func TestSendMessageCategoryOnly(t *testing.T) {
	s := newTestService(testCatalog(), &mockNotifier{})

	conversation, err := s.CreateConversation(context.Background(), "")
	require.NoError(t, err)

	_, err = s.SendMessage(context.Background(), conversation.ID, "laptop")
	require.NoError(t, err)

	final := awaitReply(t, s, conversation.ID, 3)
	reply := final.Messages[2]
	assert.Equal(t, "Here are some electronics products you might like:", reply.Text)
	assert.Len(t, reply.Products, 3)
}

func TestSendMessageRecommendationRequest(t *testing.T) {
	s := newTestService(testCatalog(), &mockNotifier{})

	conversation, err := s.CreateConversation(context.Background(), "")
	require.NoError(t, err)

	_, err = s.SendMessage(context.Background(), conversation.ID, "can you suggest something")
	require.NoError(t, err)

	final := awaitReply(t, s, conversation.ID, 3)
	reply := final.Messages[2]
	assert.Equal(t, "What kind of products are you interested in? Here are some options:", reply.Text)
	assert.Empty(t, reply.Products)

	require.Len(t, final.Suggestions, 3)
	assert.Equal(t, "Show me electronics", final.Suggestions[0].Label)
	assert.Equal(t, "I need clothing items", final.Suggestions[1].Label)
	assert.Equal(t, "Show household products", final.Suggestions[2].Label)
	assert.Len(t, final.Suggestions[0].Products, 3)
	assert.Len(t, final.Suggestions[1].Products, 3)
	assert.Len(t, final.Suggestions[2].Products, 2)
}

func TestSendMessageCartQuery(t *testing.T) {
	s := newTestService(testCatalog(), &mockNotifier{})

	conversation, err := s.CreateConversation(context.Background(), "")
	require.NoError(t, err)

	_, err = s.SendMessage(context.Background(), conversation.ID, "what's in my basket")
	require.NoError(t, err)

	final := awaitReply(t, s, conversation.ID, 3)
	reply := final.Messages[2]
	assert.Equal(t, "You can view your cart by clicking the cart icon in the top right corner. Would you like to add something to your cart?", reply.Text)
	assert.Empty(t, reply.Products)
}

func TestSendMessageSearchWithoutCategory(t *testing.T) {
	s := newTestService(testCatalog(), &mockNotifier{})

	conversation, err := s.CreateConversation(context.Background(), "")
	require.NoError(t, err)

	_, err = s.SendMessage(context.Background(), conversation.ID, "find something for me")
	require.NoError(t, err)

	final := awaitReply(t, s, conversation.ID, 3)
	reply := final.Messages[2]
	assert.Equal(t, "What category would you like to search in?", reply.Text)

	require.Len(t, final.Suggestions, 6)
	labels := make([]string, len(final.Suggestions))
	for i, suggestion := range final.Suggestions {
		labels[i] = suggestion.Label
		assert.Empty(t, suggestion.Products)
	}
	assert.Equal(t, []string{
		"Search electronics",
		"Search clothing",
		"Search food items",
		"Search medicine",
		"Search household goods",
		"Search stationery",
	}, labels)
}

func TestSendMessageDefaultReply(t *testing.T) {
	s := newTestService(testCatalog(), &mockNotifier{})

	conversation, err := s.CreateConversation(context.Background(), "")
	require.NoError(t, err)

	_, err = s.SendMessage(context.Background(), conversation.ID, "hmm")
	require.NoError(t, err)

	final := awaitReply(t, s, conversation.ID, 3)
	reply := final.Messages[2]
	assert.Equal(t, "I can help you find products in electronics, food, clothing, medicine, household goods, and stationery. I can also add items to your cart. What would you like to do?", reply.Text)
	assert.Empty(t, reply.Products)
	assert.Empty(t, final.Suggestions)
}

func TestSendMessageAddToCartEmptyCategoryFallsThrough(t *testing.T) {
	notifier := &mockNotifier{}
	// No electronics in the catalog: the add-to-cart branch finds nothing and
	// the category-only branch must not fire either.
	s := newTestService([]entity.Product{
		{ID: "f1", Title: "Fruit Basket", Price: 2624, Category: "food"},
	}, notifier)

	conversation, err := s.CreateConversation(context.Background(), "cart-1")
	require.NoError(t, err)

	_, err = s.SendMessage(context.Background(), conversation.ID, "buy a laptop")
	require.NoError(t, err)

	final := awaitReply(t, s, conversation.ID, 3)
	reply := final.Messages[2]
	assert.Equal(t, "I can help you find products in electronics, food, clothing, medicine, household goods, and stationery. I can also add items to your cart. What would you like to do?", reply.Text)
	assert.Empty(t, reply.Action)
	assert.Empty(t, notifier.Events())
}

func TestSendMessageEmptyInputIsNoOp(t *testing.T) {
	s := newTestService(testCatalog(), &mockNotifier{})

	conversation, err := s.CreateConversation(context.Background(), "")
	require.NoError(t, err)

	for _, input := range []string{"", "   ", "\t\n"} {
		updated, err := s.SendMessage(context.Background(), conversation.ID, input)
		require.NoError(t, err)
		assert.Len(t, updated.Messages, 1)
		assert.False(t, updated.Busy)
	}

	time.Sleep(50 * time.Millisecond)

	final, err := s.GetConversation(context.Background(), conversation.ID)
	require.NoError(t, err)
	assert.Len(t, final.Messages, 1)
	assert.False(t, final.Busy)
}

func TestMessageIDsStrictlyIncreasing(t *testing.T) {
	s := newTestService(testCatalog(), &mockNotifier{})

	conversation, err := s.CreateConversation(context.Background(), "")
	require.NoError(t, err)

	_, err = s.SendMessage(context.Background(), conversation.ID, "laptop")
	require.NoError(t, err)
	awaitReply(t, s, conversation.ID, 3)

	_, err = s.SendMessage(context.Background(), conversation.ID, "shirt")
	require.NoError(t, err)
	final := awaitReply(t, s, conversation.ID, 5)

	for i := 1; i < len(final.Messages); i++ {
		assert.Greater(t, final.Messages[i].ID, final.Messages[i-1].ID)
	}
}

func TestCloseConversationDiscardsPendingReply(t *testing.T) {
	notifier := &mockNotifier{}
	s := newTestService(testCatalog(), notifier)

	conversation, err := s.CreateConversation(context.Background(), "cart-1")
	require.NoError(t, err)

	_, err = s.SendMessage(context.Background(), conversation.ID, "I want to buy a laptop")
	require.NoError(t, err)

	require.NoError(t, s.CloseConversation(context.Background(), conversation.ID))

	time.Sleep(50 * time.Millisecond)

	_, err = s.GetConversation(context.Background(), conversation.ID)
	assert.ErrorIs(t, err, chat.ErrConversationNotFound)
	assert.Empty(t, notifier.Events())
}

func TestClickSuggestionRoundTrip(t *testing.T) {
	s := newTestService(testCatalog(), &mockNotifier{})

	conversation, err := s.CreateConversation(context.Background(), "")
	require.NoError(t, err)

	_, err = s.SendMessage(context.Background(), conversation.ID, "can you suggest something")
	require.NoError(t, err)
	awaitReply(t, s, conversation.ID, 3)

	clicked, err := s.ClickSuggestion(context.Background(), conversation.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, clicked.Suggestions)
	assert.True(t, clicked.Busy)
	require.Len(t, clicked.Messages, 4)
	assert.Equal(t, entity.SenderUser, clicked.Messages[3].Sender)
	assert.Equal(t, "Show me electronics", clicked.Messages[3].Text)

	final := awaitReply(t, s, conversation.ID, 5)
	reply := final.Messages[4]
	assert.Equal(t, "Here are some electronics products you might like:", reply.Text)
	require.Len(t, reply.Products, 3)
	assert.Equal(t, "e1", reply.Products[0].ID)
}

func TestClickSuggestionOutOfRange(t *testing.T) {
	s := newTestService(testCatalog(), &mockNotifier{})

	conversation, err := s.CreateConversation(context.Background(), "")
	require.NoError(t, err)

	_, err = s.ClickSuggestion(context.Background(), conversation.ID, 0)
	assert.ErrorIs(t, err, chat.ErrSuggestionNotFound)

	_, err = s.ClickSuggestion(context.Background(), conversation.ID, -1)
	assert.ErrorIs(t, err, chat.ErrSuggestionNotFound)
}

func TestAddProductToCartManual(t *testing.T) {
	notifier := &mockNotifier{}
	s := newTestService(testCatalog(), notifier)

	conversation, err := s.CreateConversation(context.Background(), "cart-1")
	require.NoError(t, err)

	updated, err := s.AddProductToCart(context.Background(), conversation.ID, "e1")
	require.NoError(t, err)

	require.Len(t, updated.Messages, 2)
	confirmation := updated.Messages[1]
	assert.Equal(t, "Added Smartphone X to your cart for ₹74999.", confirmation.Text)
	assert.Equal(t, entity.SenderBot, confirmation.Sender)
	assert.Equal(t, entity.MessageActionAddedToCart, confirmation.Action)

	events := notifier.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].Product.ID)
}

func TestAddProductToCartUnknownProduct(t *testing.T) {
	s := newTestService(testCatalog(), &mockNotifier{})

	conversation, err := s.CreateConversation(context.Background(), "")
	require.NoError(t, err)

	_, err = s.AddProductToCart(context.Background(), conversation.ID, "nope")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestOperationsOnUnknownConversation(t *testing.T) {
	s := newTestService(testCatalog(), &mockNotifier{})

	_, err := s.GetConversation(context.Background(), "missing")
	assert.ErrorIs(t, err, chat.ErrConversationNotFound)

	_, err = s.SendMessage(context.Background(), "missing", "hello")
	assert.ErrorIs(t, err, chat.ErrConversationNotFound)

	_, err = s.ClickSuggestion(context.Background(), "missing", 0)
	assert.ErrorIs(t, err, chat.ErrConversationNotFound)

	_, err = s.AddProductToCart(context.Background(), "missing", "e1")
	assert.ErrorIs(t, err, chat.ErrConversationNotFound)

	err = s.CloseConversation(context.Background(), "missing")
	assert.ErrorIs(t, err, chat.ErrConversationNotFound)
}

func TestEmptyCatalogNeverCrashes(t *testing.T) {
	s := newTestService(nil, &mockNotifier{})

	conversation, err := s.CreateConversation(context.Background(), "")
	require.NoError(t, err)

	_, err = s.SendMessage(context.Background(), conversation.ID, "show me clothing items")
	require.NoError(t, err)

	final := awaitReply(t, s, conversation.ID, 3)
	reply := final.Messages[2]
	assert.Equal(t, "Here are some clothing products I found for you:", reply.Text)
	assert.Empty(t, reply.Products)
}
