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

const discordGreen = 0x00ff00

type discordField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type discordEmbed struct {
	Title     string         `json:"title"`
	Color     int            `json:"color"`
	Fields    []discordField `json:"fields"`
	Timestamp string         `json:"timestamp"`
}

type discordPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

// DiscordChannel delivers an order summary as a rich embed to a
// Discord webhook. Success is an HTTP-level ok response.
type DiscordChannel struct {
	webhookURL string
	client     *http.Client
}

func NewDiscordChannel(webhookURL string, client *http.Client) *DiscordChannel {
	if client == nil {
		client = http.DefaultClient
	}
	return &DiscordChannel{webhookURL: webhookURL, client: client}
}

func (c *DiscordChannel) Name() string { return "discord" }

func (c *DiscordChannel) Send(ctx context.Context, order *domain.Order) error {
	body, err := json.Marshal(discordPayload{Embeds: []discordEmbed{buildEmbed(order)}})
	if err != nil {
		return fmt.Errorf("marshal discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord webhook call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func buildEmbed(order *domain.Order) discordEmbed {
	addr := order.DeliveryAddress
	return discordEmbed{
		Title: fmt.Sprintf("🎉 New Order #%s", order.ID),
		Color: discordGreen,
		Fields: []discordField{
			{Name: "👤 Customer", Value: fmt.Sprintf("Name: %s", order.UserID)},
			{Name: "📞 Contact", Value: fmt.Sprintf("Phone: %s", phoneOrNA(order.ContactPhone))},
			{Name: "🏠 Delivery Address", Value: strings.Join([]string{
				addr.Street, addr.City, addr.State, addr.PostalCode, addr.Country,
			}, ", ")},
			{Name: "💰 Total Amount", Value: fmt.Sprintf("$%.2f", order.TotalAmount)},
			{Name: "💳 Payment Method", Value: strings.ToUpper(order.PaymentMethod.String())},
			{Name: "📦 Items", Value: itemLines(order.Items, "")},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func phoneOrNA(phone string) string {
	if phone == "" {
		return "N/A"
	}
	return phone
}

func itemLines(items []domain.OrderItem, prefix string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%s%s x%d ($%.2f each)", prefix, item.Name, item.Quantity, item.Price)
	}
	return strings.Join(lines, "\n")
}
