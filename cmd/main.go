package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/savaneats/savan/internal/adapter/logger"
	"github.com/savaneats/savan/internal/adapter/postgres"
	"github.com/savaneats/savan/internal/adapter/rabbitmq"
	"github.com/savaneats/savan/internal/adapter/redis"
	"github.com/savaneats/savan/internal/app/cart"
	"github.com/savaneats/savan/internal/app/checkout"
	"github.com/savaneats/savan/internal/app/favorites"
	"github.com/savaneats/savan/internal/app/kitchen"
	"github.com/savaneats/savan/internal/app/tracking"
	"github.com/savaneats/savan/internal/app/user"
	"github.com/savaneats/savan/internal/config"

	amqpAdapter "github.com/savaneats/savan/internal/adapter/amqp"
	httpAdapter "github.com/savaneats/savan/internal/adapter/http"
)

func main() {
	mode := flag.String("mode", "", "Service mode: storefront-service, kitchen-simulator, notification-subscriber")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	workerName := flag.String("worker-name", "", "Simulator name (for kitchen-simulator)")
	heartbeatInterval := flag.Int("heartbeat-interval", 30, "Heartbeat interval in seconds")
	prefetch := flag.Int("prefetch", 1, "RabbitMQ prefetch count")
	flag.Parse()

	if *mode == "" {
		log.Fatal("--mode flag is required")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	lgr := logger.New(*mode)

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	lgr.Info("db_connected", "Connected to PostgreSQL database", "startup", map[string]interface{}{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})

	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
		"host": cfg.RabbitMQ.Host,
	})

	switch *mode {
	case "storefront-service":
		httpPort := cfg.HTTP.Port
		if *port != 0 {
			httpPort = *port
		}
		runStorefrontService(ctx, cfg, db, mqConn, lgr, httpPort)

	case "kitchen-simulator":
		if *workerName == "" {
			log.Fatal("--worker-name is required for kitchen-simulator mode")
		}
		runKitchenSimulator(ctx, cfg, db, mqConn, lgr, *workerName, *heartbeatInterval, *prefetch)

	case "notification-subscriber":
		runNotificationSubscriber(ctx, mqConn, lgr)

	default:
		log.Fatalf("Invalid mode: %s", *mode)
	}
}

func runStorefrontService(ctx context.Context, cfg *config.Config, db postgres.DB, mqConn rabbitmq.Connection, lgr logger.Logger, port int) {
	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	lgr.Info("redis_connected", "Connected to Redis", "startup", map[string]interface{}{
		"host": cfg.Redis.Host,
	})

	cartRepo := postgres.NewCartRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	workerRepo := postgres.NewWorkerRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	favoriteRepo := redis.NewFavoriteRepository(redisClient)

	publisher := rabbitmq.NewPublisher(mqConn)

	cartService := cart.NewService(cartRepo, lgr)
	checkoutService := checkout.NewService(cartRepo, orderRepo, publisher, lgr, cfg.Checkout)
	trackingService := tracking.NewService(orderRepo, workerRepo, lgr)
	favoritesService := favorites.NewService(favoriteRepo, lgr)
	userService := user.NewService(profileRepo, lgr, cfg.Auth)

	menuHandler := httpAdapter.NewMenuHandler(lgr)
	cartHandler := httpAdapter.NewCartHandler(cartService, lgr)
	checkoutHandler := httpAdapter.NewCheckoutHandler(checkoutService, lgr)
	trackingHandler := httpAdapter.NewTrackingHandler(trackingService, checkoutHandler, lgr)
	favoritesHandler := httpAdapter.NewFavoritesHandler(favoritesService, lgr)
	userHandler := httpAdapter.NewUserHandler(userService, lgr)

	identity := httpAdapter.IdentityMiddleware(userService)

	mux := http.NewServeMux()
	mux.HandleFunc("/menu", menuHandler.HandleMenu)
	mux.HandleFunc("/menu/", menuHandler.HandleMenu)
	mux.HandleFunc("/meal-period", menuHandler.GetMealPeriod)
	mux.Handle("/cart", identity(http.HandlerFunc(cartHandler.HandleCart)))
	mux.Handle("/cart/", identity(http.HandlerFunc(cartHandler.HandleCart)))
	mux.Handle("/checkout", identity(http.HandlerFunc(checkoutHandler.PlaceOrder)))
	mux.Handle("/orders", identity(http.HandlerFunc(trackingHandler.HandleOrders)))
	mux.Handle("/orders/", identity(http.HandlerFunc(trackingHandler.HandleOrders)))
	mux.HandleFunc("/workers/status", trackingHandler.GetWorkersStatus)
	mux.Handle("/favorites", identity(http.HandlerFunc(favoritesHandler.HandleFavorites)))
	mux.Handle("/favorites/", identity(http.HandlerFunc(favoritesHandler.HandleFavorites)))
	mux.Handle("/auth/", identity(http.HandlerFunc(userHandler.HandleAuth)))
	mux.Handle("/profile", identity(http.HandlerFunc(userHandler.HandleProfile)))
	mux.Handle("/profile/", identity(http.HandlerFunc(userHandler.HandleProfile)))

	handler := httpAdapter.LoggingMiddleware(lgr)(mux)
	handler = httpAdapter.RecoveryMiddleware(lgr)(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("Storefront Service started on port %d", port), "startup", map[string]interface{}{
		"port": port,
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down Storefront Service", "shutdown", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
	}
}

func runKitchenSimulator(ctx context.Context, cfg *config.Config, db postgres.DB, mqConn rabbitmq.Connection, lgr logger.Logger, workerName string, heartbeatInterval, prefetch int) {
	orderRepo := postgres.NewOrderRepository(db)
	workerRepo := postgres.NewWorkerRepository(db)

	publisher := rabbitmq.NewPublisher(mqConn)
	consumer := rabbitmq.NewConsumer(mqConn, prefetch)

	kitchenService := kitchen.NewService(orderRepo, workerRepo, publisher, lgr, workerName, heartbeatInterval, cfg.Kitchen)

	orderHandlerAMQP := amqpAdapter.NewOrderHandler(kitchenService, lgr)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := kitchenService.Start(runCtx); err != nil {
		log.Fatalf("Failed to start kitchen simulator: %v", err)
	}

	lgr.Info("service_started", fmt.Sprintf("Kitchen Simulator %s started", workerName), "startup", map[string]interface{}{
		"worker_name": workerName,
		"prefetch":    prefetch,
	})

	go func() {
		if err := consumer.ConsumeOrders(runCtx, orderHandlerAMQP.HandleOrder); err != nil {
			lgr.Error("consumer_error", "Error consuming orders", "runtime", nil, err)
		}
	}()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	lgr.Info("graceful_shutdown", "Shutting down Kitchen Simulator", "shutdown", nil)
	cancel()

	if err := kitchenService.Shutdown(context.Background()); err != nil {
		lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
	}
}

func runNotificationSubscriber(ctx context.Context, mqConn rabbitmq.Connection, lgr logger.Logger) {
	consumer := rabbitmq.NewConsumer(mqConn, 1)

	notificationHandler := amqpAdapter.NewNotificationHandler(lgr)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	lgr.Info("service_started", "Notification Subscriber started", "startup", nil)

	go func() {
		if err := consumer.ConsumeNotifications(runCtx, notificationHandler.HandleNotification); err != nil {
			lgr.Error("consumer_error", "Error consuming notifications", "runtime", nil, err)
		}
	}()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	lgr.Info("shutdown_initiated", "Shutting down Notification Subscriber", "shutdown", nil)
}
