package notify

import (
	"log"
	"net/http"
)

// Credentials carries the raw per-channel secrets from configuration.
type Credentials struct {
	DiscordWebhookURL string
	TelegramBotToken  string
	TelegramChatID    string
}

// Example values shown in setup instructions. Carrying one of these
// means the channel was never actually configured.
var placeholderValues = map[string]struct{}{
	"https://discord.com/api/webhooks/...":      {},
	"123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11": {},
	"-1001234567890":                            {},
}

func configured(values ...string) bool {
	for _, v := range values {
		if v == "" {
			return false
		}
		if _, ok := placeholderValues[v]; ok {
			return false
		}
	}
	return true
}

// BuildChannels resolves configured-vs-absent once, at load time. A
// channel is returned only when its full credential set is present and
// none of it is a known placeholder; anything else silently disables
// that channel.
func BuildChannels(creds Credentials, client *http.Client, opts ...TelegramOption) []Channel {
	var channels []Channel

	if configured(creds.DiscordWebhookURL) {
		channels = append(channels, NewDiscordChannel(creds.DiscordWebhookURL, client))
	} else {
		log.Println("discord notifications disabled: webhook not configured")
	}

	if configured(creds.TelegramBotToken, creds.TelegramChatID) {
		channels = append(channels, NewTelegramChannel(creds.TelegramBotToken, creds.TelegramChatID, client, opts...))
	} else {
		log.Println("telegram notifications disabled: bot token or chat id not configured")
	}

	return channels
}
