package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/nisuz/decorhavenstore/internal/auth"
	"github.com/nisuz/decorhavenstore/internal/cart"
	"github.com/nisuz/decorhavenstore/internal/catalog"
	"github.com/nisuz/decorhavenstore/internal/checkout"
	"github.com/nisuz/decorhavenstore/internal/config"
	"github.com/nisuz/decorhavenstore/internal/events"
	httpapi "github.com/nisuz/decorhavenstore/internal/http"
	"github.com/nisuz/decorhavenstore/internal/kv"
	"github.com/nisuz/decorhavenstore/internal/notify"
	"github.com/nisuz/decorhavenstore/internal/order"
	"github.com/nisuz/decorhavenstore/internal/payment"
)

func main() {
	cfg := config.Load()

	// Cart storage: Redis when an address is configured, in-memory
	// otherwise.
	var (
		kvStore     kv.Store
		redisClient *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		kvStore = kv.NewRedisStore(redisClient)
		log.Printf("carts stored in redis at %s", cfg.RedisAddr)
	} else {
		kvStore = kv.NewMemoryStore()
		log.Println("carts stored in memory")
	}
	cartStore := cart.NewStore(kvStore)

	shopCatalog := catalog.NewSeededCatalog()

	orderRepo, err := order.NewSQLiteRepository(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("failed to open order store: %v", err)
	}

	processor := payment.NewSimulatedProcessor(
		payment.WithLatency(cfg.PaymentLatency),
		payment.WithSuccessRate(cfg.PaymentSuccessRate),
	)
	registry := payment.NewDefaultRegistry(processor)
	verifier := payment.NewVerifier(processor)

	channels := notify.BuildChannels(notify.Credentials{
		DiscordWebhookURL: cfg.DiscordWebhookURL,
		TelegramBotToken:  cfg.TelegramBotToken,
		TelegramChatID:    cfg.TelegramChatID,
	}, &http.Client{
		Timeout:   10 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
	dispatcher := notify.NewDispatcher(channels)

	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers...)
		log.Printf("publishing order events to kafka at %v", cfg.KafkaBrokers)
	}

	orderService := order.NewService(orderRepo, dispatcher)
	checkoutService := checkout.NewService(cartStore, registry, orderService, publisher)
	authService := auth.NewService(cfg.JWTSecret)

	router := httpapi.NewRouter(httpapi.RouterDeps{
		Catalog:        httpapi.NewCatalogHandler(shopCatalog),
		Cart:           httpapi.NewCartHandler(cartStore, shopCatalog),
		Checkout:       httpapi.NewCheckoutHandler(checkoutService),
		Orders:         httpapi.NewOrdersHandler(orderService),
		Payments:       httpapi.NewPaymentsHandler(verifier),
		Auth:           httpapi.NewAuthHandler(authService),
		Tokens:         authService,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	// Let in-flight notifications finish before closing the backends.
	if err := dispatcher.Close(ctx); err != nil {
		log.Printf("notification dispatcher: %v", err)
	}
	if err := publisher.Close(); err != nil {
		log.Printf("event publisher: %v", err)
	}
	if err := orderRepo.Close(); err != nil {
		log.Printf("order store: %v", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("redis: %v", err)
		}
	}

	log.Println("server exited")
}
