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
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookingFormHandler "github.com/m04kA/SorftInn-Web/internal/api/handlers/booking_form"
	bookingSuccessHandler "github.com/m04kA/SorftInn-Web/internal/api/handlers/booking_success"
	createBookingHandler "github.com/m04kA/SorftInn-Web/internal/api/handlers/create_booking"
	"github.com/m04kA/SorftInn-Web/internal/api/handlers/health"
	homeHandler "github.com/m04kA/SorftInn-Web/internal/api/handlers/home"
	manageBookingHandler "github.com/m04kA/SorftInn-Web/internal/api/handlers/manage_booking"
	searchRoomsHandler "github.com/m04kA/SorftInn-Web/internal/api/handlers/search_rooms"
	staffDashboardHandler "github.com/m04kA/SorftInn-Web/internal/api/handlers/staff_dashboard"
	staffLoginHandler "github.com/m04kA/SorftInn-Web/internal/api/handlers/staff_login"
	staffLogoutHandler "github.com/m04kA/SorftInn-Web/internal/api/handlers/staff_logout"
	"github.com/m04kA/SorftInn-Web/internal/api/middleware"
	"github.com/m04kA/SorftInn-Web/internal/config"
	"github.com/m04kA/SorftInn-Web/internal/imageurl"
	submissionRepo "github.com/m04kA/SorftInn-Web/internal/infra/storage/submission"
	"github.com/m04kA/SorftInn-Web/internal/integrations/hotelapi"
	staffService "github.com/m04kA/SorftInn-Web/internal/service/staff"
	"github.com/m04kA/SorftInn-Web/internal/session"
	createBookingUC "github.com/m04kA/SorftInn-Web/internal/usecase/create_booking"
	getRoomOfferUC "github.com/m04kA/SorftInn-Web/internal/usecase/get_room_offer"
	searchRoomsUC "github.com/m04kA/SorftInn-Web/internal/usecase/search_rooms"
	"github.com/m04kA/SorftInn-Web/internal/web"
	"github.com/m04kA/SorftInn-Web/pkg/dbmetrics"
	"github.com/m04kA/SorftInn-Web/pkg/logger"
	"github.com/m04kA/SorftInn-Web/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, logger.WithFormat(cfg.Logs.Format))
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting %s web...", cfg.Site.Name)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Журнал отправок бронирований (опционально).
	// Интерфейсы остаются nil, если база не настроена.
	var (
		journal   createBookingUC.SubmissionJournal
		lookup    bookingSuccessHandler.SubmissionLookup
		lister    staffDashboardHandler.SubmissionLister
		outcomes  createBookingUC.OutcomeRecorder
		backendMx hotelapi.Observer
	)
	if metricsCollector != nil {
		outcomes = metricsCollector
		backendMx = metricsCollector
	}

	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to open database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err = db.PingContext(pingCtx)
		cancelPing()
		if err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Submission journal connected (host=%s, db=%s)", cfg.Database.Host, cfg.Database.DBName)

		var repository *submissionRepo.Repository
		if metricsCollector != nil {
			repository = submissionRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh))
			log.Info("Database metrics collection started")
		} else {
			repository = submissionRepo.NewRepository(db)
		}
		journal = repository
		lookup = repository
		lister = repository
	} else {
		log.Info("Submission journal disabled")
	}

	// Инициализируем клиента API отеля
	hotelClient := hotelapi.NewClient(
		cfg.Backend.BaseURL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
		backendMx,
	)
	log.Info("Hotel API client initialized (url=%s, timeout=%ds)", cfg.Backend.BaseURL, cfg.Backend.Timeout)

	images := imageurl.NewNormalizer(cfg.Images.CloudBaseURL, cfg.Images.CloudName, cfg.Backend.BaseURL)

	// Инициализируем сервисы и use cases
	staffSvc := staffService.NewService(hotelClient, log)
	searchRoomsUseCase := searchRoomsUC.NewUseCase(hotelClient, images, log)
	getRoomOfferUseCase := getRoomOfferUC.NewUseCase(hotelClient, images, log)
	createBookingUseCase := createBookingUC.NewUseCase(hotelClient, journal, outcomes, log)

	sessions := session.NewManager(
		cfg.Session.CookieName,
		time.Duration(cfg.Session.TTLHours)*time.Hour,
		cfg.Session.SecureCookie,
	)

	renderer, err := web.NewRenderer(web.Site{Name: cfg.Site.Name, CurrencySymbol: cfg.Site.CurrencySymbol})
	if err != nil {
		log.Fatal("Failed to parse templates: %v", err)
	}

	// Инициализируем handlers
	home := homeHandler.NewHandler(searchRoomsUseCase, renderer, log)
	searchRooms := searchRoomsHandler.NewHandler(searchRoomsUseCase, renderer, log)
	bookingForm := bookingFormHandler.NewHandler(getRoomOfferUseCase, renderer, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, bookingForm, renderer, log)
	bookingSuccess := bookingSuccessHandler.NewHandler(lookup, renderer, log)
	staffLogin := staffLoginHandler.NewHandler(staffSvc, sessions, renderer, log)
	staffLogout := staffLogoutHandler.NewHandler(sessions, log)
	staffDashboard := staffDashboardHandler.NewHandler(staffSvc, lister, sessions, renderer, log)
	manageBooking := manageBookingHandler.NewHandler(staffSvc, sessions, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover(log), middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", web.StaticHandler())).Methods(http.MethodGet)

	// ============================================================
	// GUEST PAGES
	// ============================================================

	r.HandleFunc("/", home.Handle).Methods(http.MethodGet)
	r.HandleFunc("/bookings", searchRooms.Handle).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{roomId}", bookingForm.Handle).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{roomId}", createBooking.Handle).Methods(http.MethodPost)
	r.HandleFunc("/bookings/{roomId}/success", bookingSuccess.Handle).Methods(http.MethodGet)

	// JSON API
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/rooms/available", searchRooms.HandleJSON).Methods(http.MethodGet)

	// ============================================================
	// STAFF PAGES
	// ============================================================

	r.HandleFunc("/auth", staffLogin.HandleForm).Methods(http.MethodGet)
	r.HandleFunc("/auth", staffLogin.HandleSubmit).Methods(http.MethodPost)
	r.HandleFunc("/auth/logout", staffLogout.Handle).Methods(http.MethodPost)

	protected := r.PathPrefix("/auth/dashboard").Subrouter()
	protected.Use(middleware.Auth(sessions))

	protected.HandleFunc("", staffDashboard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", manageBooking.HandleStatus).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/delete", manageBooking.HandleDelete).Methods(http.MethodPost)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
