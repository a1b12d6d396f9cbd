package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nisuz/decorhavenstore/internal/domain"
)

const defaultTelegramAPIBase = "https://api.telegram.org"

type telegramRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

// TelegramChannel posts an order summary to a chat via the bot API.
// Success is the response body's ok flag, not transport success.
type TelegramChannel struct {
	botToken string
	chatID   string
	apiBase  string
	client   *http.Client
	now      func() time.Time
}

type TelegramOption func(*TelegramChannel)

// WithTelegramAPIBase overrides the bot API host. Tests point it at a
// local server.
func WithTelegramAPIBase(base string) TelegramOption {
	return func(c *TelegramChannel) { c.apiBase = base }
}

func WithTelegramClock(now func() time.Time) TelegramOption {
	return func(c *TelegramChannel) { c.now = now }
}

func NewTelegramChannel(botToken, chatID string, client *http.Client, opts ...TelegramOption) *TelegramChannel {
	if client == nil {
		client = http.DefaultClient
	}
	c := &TelegramChannel{
		botToken: botToken,
		chatID:   chatID,
		apiBase:  defaultTelegramAPIBase,
		client:   client,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *TelegramChannel) Name() string { return "telegram" }

func (c *TelegramChannel) Send(ctx context.Context, order *domain.Order) error {
	body, err := json.Marshal(telegramRequest{
		ChatID:    c.chatID,
		Text:      c.buildMessage(order),
		ParseMode: "Markdown",
	})
	if err != nil {
		return fmt.Errorf("marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.apiBase, c.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram api call: %w", err)
	}
	defer resp.Body.Close()

	var result telegramResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode telegram response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram api rejected message: %s", result.Description)
	}
	return nil
}

// buildMessage renders the markdown summary. The send time line is the
// dispatch moment, distinct from the order's creation timestamp.
func (c *TelegramChannel) buildMessage(order *domain.Order) string {
	addr := order.DeliveryAddress
	var b strings.Builder

	fmt.Fprintf(&b, "🎉 *NEW ORDER #%s*\n\n", order.ID)
	fmt.Fprintf(&b, "👤 *Customer*: %s\n", order.UserID)
	fmt.Fprintf(&b, "📞 *Contact*: %s\n\n", phoneOrNA(order.ContactPhone))
	fmt.Fprintf(&b, "🏠 *Delivery Address*:\n%s,\n%s, %s\n%s, %s\n\n",
		addr.Street, addr.City, addr.State, addr.PostalCode, addr.Country)
	fmt.Fprintf(&b, "💰 *Total Amount*: $%.2f\n", order.TotalAmount)
	fmt.Fprintf(&b, "💳 *Payment Method*: %s\n\n", strings.ToUpper(order.PaymentMethod.String()))
	fmt.Fprintf(&b, "📦 *Items*:\n%s\n\n", itemLines(order.Items, "- "))
	fmt.Fprintf(&b, "🕒 *Order Time*: %s\n", c.now().Format("2006-01-02 15:04:05"))

	return b.String()
}
