package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "", cfg.RedisAddr)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, 800*time.Millisecond, cfg.PaymentLatency)
	assert.InDelta(t, 0.95, cfg.PaymentSuccessRate, 0.0001)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092")
	t.Setenv("PAYMENT_LATENCY", "10ms")
	t.Setenv("PAYMENT_SUCCESS_RATE", "1.0")

	cfg := Load()

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 10*time.Millisecond, cfg.PaymentLatency)
	assert.InDelta(t, 1.0, cfg.PaymentSuccessRate, 0.0001)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PAYMENT_LATENCY", "soon")
	t.Setenv("PAYMENT_SUCCESS_RATE", "200")

	cfg := Load()

	assert.Equal(t, 800*time.Millisecond, cfg.PaymentLatency)
	assert.InDelta(t, 0.95, cfg.PaymentSuccessRate, 0.0001)
}
