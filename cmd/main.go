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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	createBookingHandler "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/api/handlers/get_availability"
	getBookingHandler "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/api/handlers/list_bookings"
	googleAuthHandler "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/api/handlers/google_auth"
	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/api/middleware"
	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/config"
	bookingRepo "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/infra/storage/booking"
	calendarClient "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/integrations/googlecalendar"
	bookingsService "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/service/bookings"
	createBookingUC "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/usecase/create_booking"
	getAvailabilityUC "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/usecase/get_availability"
	"github.com/4ppleSA0CE/coffee-chat-scheduler/pkg/logger"
	"github.com/4ppleSA0CE/coffee-chat-scheduler/pkg/metrics"
)

func main() {
	// Подхватываем .env, если он есть (секреты Google OAuth)
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting coffee-chat-scheduler...")
	log.Info("Configuration loaded from config.toml")

	// Собираем бизнес-правила бронирования
	rules, err := cfg.Booking.ScheduleRules()
	if err != nil {
		log.Fatal("Invalid booking configuration: %v", err)
	}
	log.Info("Booking rules: timezone=%s, window=%s-%s, slot=%dm, lead_time=%dh, buffer=%dm",
		cfg.Booking.Timezone, cfg.Booking.OpenTime, cfg.Booking.CloseTime,
		cfg.Booking.SlotDurationMinutes, cfg.Booking.MinLeadTimeHours, cfg.Booking.BufferMinutes)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	// Инициализируем репозиторий и сервис чтения
	bookingRepository := bookingRepo.NewRepository(db)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// OAuth конфигурация для bootstrap-флоу получения refresh token
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURI,
		Endpoint:     google.Endpoint,
		Scopes:       []string{calendar.CalendarScope},
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// CORS для фронтенда
	if len(cfg.CORS.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
		log.Info("CORS enabled for origins: %v", cfg.CORS.AllowedOrigins)
	}

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// OAuth bootstrap для владельца календаря
	googleAuth := googleAuthHandler.NewHandler(oauthConfig, log)
	r.HandleFunc("/auth/google", googleAuth.HandleLogin).Methods(http.MethodGet)
	r.HandleFunc("/auth/google/callback", googleAuth.HandleCallback).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// Чтение бронирований работает и без календаря
	getBooking := getBookingHandler.NewHandler(bookingSvc, rules.Location, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, rules.Location, log)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet, http.MethodOptions)

	// Доступность и создание бронирований поднимаются только при
	// настроенном refresh token. До его получения доступен /auth/google.
	if cfg.Google.RefreshToken != "" {
		calClient, err := calendarClient.NewClient(
			context.Background(),
			calendarClient.Config{
				CalendarID:   cfg.Google.CalendarID,
				ClientID:     cfg.Google.ClientID,
				ClientSecret: cfg.Google.ClientSecret,
				RefreshToken: cfg.Google.RefreshToken,
				Timeout:      time.Duration(cfg.Google.RequestTimeout) * time.Second,
			},
			rules.Location,
			log,
			metricsCollector,
		)
		if err != nil {
			log.Fatal("Failed to initialize Google Calendar client: %v", err)
		}
		log.Info("Google Calendar client initialized (calendar_id=%s)", cfg.Google.CalendarID)

		// Инициализируем use cases
		getAvailabilityUseCase := getAvailabilityUC.NewUseCase(calClient, rules, log)
		createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, calClient, rules, log)

		// Инициализируем handlers
		getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, rules.Location, log)
		createBooking := createBookingHandler.NewHandler(createBookingUseCase, rules.Location, metricsCollector, log)

		api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet, http.MethodOptions)
		api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost, http.MethodOptions)
	} else {
		log.Warn("GOOGLE_REFRESH_TOKEN is not set - booking API disabled, visit /auth/google to obtain one")
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	log.Info("Server stopped gracefully")
}
