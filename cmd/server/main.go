package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"shopspot-be/internal/cart"
	"shopspot-be/internal/checkout"
	"shopspot-be/internal/config"
	"shopspot-be/internal/coupon"
	"shopspot-be/internal/db"
	"shopspot-be/internal/events"
	"shopspot-be/internal/httpapi"
	"shopspot-be/internal/logger"
	"shopspot-be/internal/order"
	"shopspot-be/internal/payment"
	"shopspot-be/internal/product"
	"shopspot-be/internal/stats"
	"shopspot-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Leave the publisher as an untyped nil when Kafka is not configured so
	// the order service skips publishing entirely.
	var orderEvents order.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer := events.NewProducer(cfg.KafkaBrokers, events.TopicOrders, 256)
		producer.Start(ctx)
		defer producer.WaitClosed()
		orderEvents = events.NewOrderEvents(producer, "shopspot-be")
	}

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	couponRepo := coupon.NewRepository(database)
	couponSvc := coupon.NewService(couponRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	orderRepo := order.NewRepository(database, productRepo)
	orderSvc := order.NewService(orderRepo, orderEvents)

	statsRepo := stats.NewRepository(database)
	statsSvc := stats.NewService(statsRepo, userRepo)

	cartStore := cart.NewStore(cart.NewRedisStorage(rdb))
	gateway := payment.NewStripeGateway(cfg.StripeSecretKey)
	orchestrator := checkout.NewOrchestrator(gateway, orderSvc, cartStore)

	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:     httpapi.NewAuthHandler(userSvc),
		Cart:     httpapi.NewCartHandler(cartStore, productSvc, couponSvc),
		Checkout: httpapi.NewCheckoutHandler(orchestrator),
		Coupons:  httpapi.NewCouponHandler(couponSvc),
		Orders:   httpapi.NewOrderHandler(orderSvc),
		Payments: httpapi.NewPaymentHandler(gateway),
		Products: httpapi.NewProductHandler(productSvc),
		Stats:    httpapi.NewStatsHandler(statsSvc),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.L().Info("🚀 server running", zap.String("port", cfg.AppPort))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
