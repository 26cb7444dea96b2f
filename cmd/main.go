package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/graph-gophers/graphql-go/relay"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/event"

	gql "github.com/m04kA/SMC-HospitalityService/internal/api/graphql"
	getInvoicePDFHandler "github.com/m04kA/SMC-HospitalityService/internal/api/handlers/get_invoice_pdf"
	healthHandler "github.com/m04kA/SMC-HospitalityService/internal/api/handlers/health"
	"github.com/m04kA/SMC-HospitalityService/internal/api/middleware"
	"github.com/m04kA/SMC-HospitalityService/internal/config"
	availabilityCache "github.com/m04kA/SMC-HospitalityService/internal/infra/cache/availability"
	"github.com/m04kA/SMC-HospitalityService/internal/infra/events"
	businessRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/business"
	catalogRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/catalog"
	invoiceRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/invoice"
	"github.com/m04kA/SMC-HospitalityService/internal/infra/storage/mongodb"
	privatisationRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/privatisation"
	reservationRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HospitalityService/internal/integrations/invoicepdf"
	businessesService "github.com/m04kA/SMC-HospitalityService/internal/service/businesses"
	catalogService "github.com/m04kA/SMC-HospitalityService/internal/service/catalog"
	"github.com/m04kA/SMC-HospitalityService/internal/service/hooks"
	invoicesService "github.com/m04kA/SMC-HospitalityService/internal/service/invoices"
	"github.com/m04kA/SMC-HospitalityService/internal/service/pricing"
	privatisationService "github.com/m04kA/SMC-HospitalityService/internal/service/privatisation"
	reservationsService "github.com/m04kA/SMC-HospitalityService/internal/service/reservations"
	createPrivatisationV2UC "github.com/m04kA/SMC-HospitalityService/internal/usecase/create_privatisation_v2"
	createReservationUC "github.com/m04kA/SMC-HospitalityService/internal/usecase/create_reservation"
	createReservationV2UC "github.com/m04kA/SMC-HospitalityService/internal/usecase/create_reservation_v2"
	getAvailabilityUC "github.com/m04kA/SMC-HospitalityService/internal/usecase/get_availability"
	updateRestaurantUC "github.com/m04kA/SMC-HospitalityService/internal/usecase/update_restaurant"
	"github.com/m04kA/SMC-HospitalityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HospitalityService/pkg/logger"
	"github.com/m04kA/SMC-HospitalityService/pkg/metrics"
	"github.com/m04kA/SMC-HospitalityService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-HospitalityService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		mongoMonitor     *event.CommandMonitor
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		mongoMonitor = metricsCollector.MongoMonitor()
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к MongoDB (бизнесы, бронирования, каталог)
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), time.Duration(cfg.Mongo.ConnectTimeout)*time.Second)
	mongoClient, err := mongodb.Connect(connectCtx, mongodb.Options{
		URI:            cfg.Mongo.URI,
		ConnectTimeout: time.Duration(cfg.Mongo.ConnectTimeout) * time.Second,
		MaxPoolSize:    cfg.Mongo.MaxPoolSize,
		Monitor:        mongoMonitor,
	})
	if err != nil {
		cancelConnect()
		log.Fatal("Failed to connect to MongoDB: %v", err)
	}
	mongoDB := mongoClient.Database(cfg.Mongo.Database)
	if err := mongodb.EnsureIndexes(connectCtx, mongoDB); err != nil {
		log.Warn("Failed to ensure MongoDB indexes: %v", err)
	}
	cancelConnect()
	log.Info("Successfully connected to MongoDB (db=%s)", cfg.Mongo.Database)

	// Подключаемся к PostgreSQL (счета)
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// С nil-метриками обёртка работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш доступности (необязательный)
	var (
		redisClient *redis.Client
		occupancy   getAvailabilityUC.OccupancyCache
		invalidator reservationsService.AvailabilityInvalidator
	)
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis is unavailable, availability will be computed from MongoDB: %v", err)
		}
		cache := availabilityCache.NewCache(redisClient, cfg.Availability.CacheTTLDuration())
		occupancy = cache
		invalidator = cache
		log.Info("Availability cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Availability.CacheTTL)
	}

	// Репозитории
	businessRepository := businessRepo.NewRepository(mongoDB)
	reservationRepository := reservationRepo.NewRepository(mongoDB)
	privatisationRepository := privatisationRepo.NewRepository(mongoDB)
	serviceRepository := catalogRepo.NewServiceRepository(mongoDB)
	staffRepository := catalogRepo.NewStaffRepository(mongoDB)
	tableRepository := catalogRepo.NewTableRepository(mongoDB)
	roomRepository := catalogRepo.NewRoomRepository(mongoDB)
	invoiceRepository := invoiceRepo.NewRepository(wrappedDB)

	// Post-commit хуки выполняются по порядку: счет, кэш, событие
	invoiceGenerator := invoicesService.NewGenerator(invoiceRepository, txMgr, cfg.Pricing.Currency, log)

	var (
		publisher      *events.Publisher
		eventPublisher hooks.EventPublisher
	)
	if cfg.RabbitMQ.Enabled {
		publisher = events.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, log)
		eventPublisher = publisher
		log.Info("Reservation events enabled (queue=%s)", cfg.RabbitMQ.Queue)
	}
	hookRunner := hooks.NewRunner(log, metricsCollector, hooks.Chain(invoiceGenerator, invalidator, eventPublisher)...)

	// Сервисы
	priceResolver := pricing.NewResolver(cfg.Pricing.DefaultPricePerGuest, log)
	totalCalculator := pricing.NewCalculator(cfg.Pricing.PrivatisationRatePerGuest)

	businessSvc := businessesService.NewService(businessRepository, log)
	reservationSvc := reservationsService.NewService(reservationRepository, invalidator, log)
	privatisationSvc := privatisationService.NewService(privatisationRepository, businessRepository, log)
	invoiceSvc := invoicesService.NewService(invoiceRepository, businessRepository, reservationRepository, invoicepdf.NewRenderer(), log)

	// Use cases
	createReservation := createReservationUC.NewUseCase(
		reservationRepository,
		businessRepository,
		serviceRepository,
		roomRepository,
		priceResolver,
		totalCalculator,
		hookRunner,
		log,
	)
	createReservationV2 := createReservationV2UC.NewUseCase(
		reservationRepository,
		businessRepository,
		priceResolver,
		totalCalculator,
		hookRunner,
		log,
	)
	createPrivatisationV2 := createPrivatisationV2UC.NewUseCase(
		reservationRepository,
		businessRepository,
		totalCalculator,
		hookRunner,
		log,
	)
	getAvailability := getAvailabilityUC.NewUseCase(
		businessRepository,
		reservationRepository,
		occupancy,
		metricsCollector,
		log,
	)
	updateRestaurant := updateRestaurantUC.NewUseCase(businessRepository, log)

	// GraphQL
	resolver := gql.NewResolver(gql.Dependencies{
		Businesses:            businessSvc,
		Reservations:          reservationSvc,
		Privatisation:         privatisationSvc,
		Invoices:              invoiceSvc,
		Services:              catalogService.NewServicesService(serviceRepository, log),
		Staff:                 catalogService.NewStaffService(staffRepository, log),
		Tables:                catalogService.NewTablesService(tableRepository, log),
		Rooms:                 catalogService.NewRoomsService(roomRepository, log),
		UpdateRestaurant:      updateRestaurant,
		CreateReservation:     createReservation,
		CreateReservationV2:   createReservationV2,
		CreatePrivatisationV2: createPrivatisationV2,
		GetAvailability:       getAvailability,
	}, log)
	schema, err := gql.NewSchema(resolver, log)
	if err != nil {
		log.Fatal("Failed to build GraphQL schema: %v", err)
	}

	// Инициализируем handlers
	checks := map[string]healthHandler.Check{
		"mongo":    func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
		"postgres": wrappedDB.PingContext,
	}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}
	health := healthHandler.NewHandler(checks, log)
	getInvoicePDF := getInvoicePDFHandler.NewHandler(invoiceSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Ограничение частоты запросов
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerSecond,
			cfg.RateLimit.Burst,
			time.Duration(cfg.RateLimit.VisitorTTL)*time.Second,
		)
		go limiter.Run(stopMetricsCh)
		r.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// ============================================================
	// API (токен необязателен; права проверяются в сервисах)
	// ============================================================

	auth := middleware.NewAuthenticator(cfg.Auth.Enabled, cfg.Auth.JWTSecret, cfg.Auth.Issuer, log)
	if !cfg.Auth.Enabled {
		log.Warn("Authentication is disabled: every request acts as admin")
	}

	r.Handle("/graphql", auth.Middleware(&relay.Handler{Schema: schema})).Methods(http.MethodPost, http.MethodOptions)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.Middleware)

	// Скачивание счета в PDF
	api.HandleFunc("/invoices/{invoiceId}/pdf", getInvoicePDF.Handle).Methods(http.MethodGet)

	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.HeaderRequestID},
		ExposedHeaders:   []string{middleware.HeaderRequestID},
		AllowCredentials: true,
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем фоновые задачи (статистика пула, очистка лимитера)
	close(stopMetricsCh)

	if publisher != nil {
		if err := publisher.Close(); err != nil {
			log.Warn("Failed to close RabbitMQ connection: %v", err)
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Warn("Failed to close Redis client: %v", err)
		}
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Warn("Failed to disconnect from MongoDB: %v", err)
	}

	log.Info("Server stopped gracefully")
}
