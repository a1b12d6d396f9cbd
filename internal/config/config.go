package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything main needs to wire the storefront.
// Optional backends degrade instead of failing: an empty RedisAddr
// selects the in-memory cart store, empty KafkaBrokers disables event
// publishing, and unset or placeholder notification credentials
// disable the matching channel.
type Config struct {
	HTTPPort        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	RedisAddr  string
	SQLitePath string

	KafkaBrokers []string

	JWTSecret string

	DiscordWebhookURL string
	TelegramBotToken  string
	TelegramChatID    string

	PaymentLatency     time.Duration
	PaymentSuccessRate float64
}

func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: skipping .env: %v", err)
	}

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,

		RedisAddr:  getEnv("REDIS_ADDR", ""),
		SQLitePath: getEnv("SQLITE_PATH", "storefront.db"),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),

		DiscordWebhookURL: getEnv("DISCORD_WEBHOOK_URL", ""),
		TelegramBotToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:    getEnv("TELEGRAM_CHAT_ID", ""),

		PaymentLatency:     getDurationEnv("PAYMENT_LATENCY", 800*time.Millisecond),
		PaymentSuccessRate: getFloatEnv("PAYMENT_SUCCESS_RATE", 0.95),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = splitAndTrim(brokers)
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getFloatEnv(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 || f > 1 {
		log.Printf("config: invalid %s=%q, using %g", key, value, defaultValue)
		return defaultValue
	}
	return f
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
