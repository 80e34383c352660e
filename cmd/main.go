package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/travel-booking-service/internal/app/config"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/app/endpoints"
	"github.com/ijalalfrz/travel-booking-service/internal/app/service"
	"github.com/ijalalfrz/travel-booking-service/internal/app/transport"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/airport"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/bookingstore"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/flight"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/gds"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/logger"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/mailer"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/metrics"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/visa"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title           Travel Booking Service API
// @version         0.0.1
// @description     travel-booking-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.String("booking_store", cfg.BookingStore.Driver),
		slog.String("mailer", cfg.Mailer.Driver))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cancel, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cancel context.CancelFunc, cfg config.Config) {
	m := metrics.NewMetrics(cfg.Metrics.Namespace)

	endpts, closeAll, err := makeEndpoints(ctx, &cfg, m)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build endpoints", slog.String("error", err.Error()))
		cancel()

		return
	}
	defer closeAll()

	router := transport.MakeHTTPRouter(&cfg, endpts, m)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

// closers run in reverse order of registration.
type closers []func() error

func (c closers) closeAll() {
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i](); err != nil {
			slog.Error("failed to close resource", slog.String("error", err.Error()))
		}
	}
}

func makeEndpoints(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (endpoints.Endpoints, func(), error) {
	var toClose closers

	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})
	toClose = append(toClose, redisClient.Close)

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	bookings, err := initBookingStore(ctx, cfg, redisClient, &toClose)
	if err != nil {
		toClose.closeAll()
		return endpoints.Endpoints{}, nil, err
	}

	mail, err := initMailer(ctx, cfg, m)
	if err != nil {
		toClose.closeAll()
		return endpoints.Endpoints{}, nil, err
	}

	catalogue, err := airport.NewCatalogue()
	if err != nil {
		toClose.closeAll()
		return endpoints.Endpoints{}, nil, err
	}

	gateway := gds.NewClient(gds.Config{
		BaseURL:      cfg.GDS.BaseURL,
		ClientID:     cfg.GDS.ClientID,
		ClientSecret: cfg.GDS.ClientSecret,
		TokenCache:   cfg.GDS.TokenCache,
		Currency:     cfg.GDS.Currency,
		ResultCap:    cfg.GDS.ResultCap,
		Timeout:      cfg.GDS.Timeout,
		RateLimitRPS: cfg.GDS.RateLimitRPS,
		Limiter:      redis_rate.NewLimiter(redisClient),
	}, m)

	selections := flight.NewSelectionCache(redisClient)

	checkoutService := service.NewCheckoutService(gateway, selections, bookings, service.CheckoutConfig{
		SelectionTTL:  cfg.Checkout.SelectionTTL,
		RedirectDelay: cfg.Checkout.RedirectDelay,
		CountryCode:   cfg.Checkout.CountryCode,
		LockTimeout:   cfg.Checkout.LockTimeout,
	}, m)

	visaClient := visa.NewClient(visa.Config{
		APIURL:  cfg.Visa.APIURL,
		APIHost: cfg.Visa.APIHost,
		APIKey:  cfg.Visa.APIKey,
		Timeout: cfg.Visa.Timeout,
	}, m)

	tripService := service.NewTripService(mail, service.TripConfig{
		TeamEmail:     cfg.Mailer.TeamEmail,
		WhatsAppPhone: cfg.WhatsApp.Phone,
	}, m)

	// init service endpoint
	return endpoints.Endpoints{
		FlightEndpoint:   endpoints.MakeFlightEndpoint(service.NewFlightService(gateway)),
		CheckoutEndpoint: endpoints.MakeCheckoutEndpoint(checkoutService),
		BookingEndpoint:  endpoints.MakeBookingEndpoint(service.NewBookingService(gateway, bookings)),
		VisaEndpoint:     endpoints.MakeVisaEndpoint(service.NewVisaService(visaClient)),
		TripEndpoint:     endpoints.MakeTripEndpoint(tripService),
		AirportEndpoint:  endpoints.MakeAirportEndpoint(service.NewAirportService(catalogue)),
	}, toClose.closeAll, nil
}

func initBookingStore(
	ctx context.Context,
	cfg *config.Config,
	redisClient *redis.Client,
	toClose *closers,
) (bookingstore.Store, error) {
	switch cfg.BookingStore.Driver {
	case bookingstore.DriverMemory:
		return bookingstore.NewMemoryStore(), nil
	case bookingstore.DriverRedis:
		return bookingstore.NewRedisStore(redisClient, cfg.BookingStore.Key), nil
	case bookingstore.DriverPostgres:
		db, err := gorm.Open(postgres.Open(cfg.DB.DSN), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql db: %w", err)
		}

		sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConnections)
		sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConnections)
		sqlDB.SetConnMaxLifetime(cfg.DB.MaxConnectionLifetime)
		sqlDB.SetConnMaxIdleTime(cfg.DB.MaxConnectionIdleTime)
		*toClose = append(*toClose, sqlDB.Close)

		return bookingstore.NewPostgresStore(db)
	case bookingstore.DriverMongo:
		client, err := bookingstore.NewMongoClient(ctx, cfg.Mongo.URI, cfg.Mongo.Username, cfg.Mongo.Password)
		if err != nil {
			return nil, err
		}

		*toClose = append(*toClose, func() error {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			return client.Disconnect(disconnectCtx)
		})

		return bookingstore.NewMongoStore(client.Database(cfg.Mongo.Database)), nil
	default:
		return nil, fmt.Errorf("unknown booking store driver %q", cfg.BookingStore.Driver)
	}
}

func initMailer(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (service.Mailer, error) {
	switch cfg.Mailer.Driver {
	case mailer.DriverEmailJS:
		return mailer.NewEmailJSMailer(mailer.EmailJSConfig{
			APIURL:             cfg.Mailer.EmailJS.APIURL,
			ServiceID:          cfg.Mailer.EmailJS.ServiceID,
			PublicKey:          cfg.Mailer.EmailJS.PublicKey,
			AccessToken:        cfg.Mailer.EmailJS.AccessToken,
			TeamTemplateID:     cfg.Mailer.EmailJS.TeamTemplateID,
			CustomerTemplateID: cfg.Mailer.EmailJS.CustomerTemplateID,
			Timeout:            cfg.Mailer.Timeout,
		}, m), nil
	case mailer.DriverGmail:
		return mailer.NewGmailMailer(ctx, mailer.GmailConfig{
			ClientID:     cfg.Mailer.Gmail.ClientID,
			ClientSecret: cfg.Mailer.Gmail.ClientSecret,
			RefreshToken: cfg.Mailer.Gmail.RefreshToken,
			Sender:       cfg.Mailer.Gmail.Sender,
		}, m)
	case mailer.DriverLog:
		return mailer.NewLogMailer(), nil
	default:
		return nil, fmt.Errorf("unknown mailer driver %q", cfg.Mailer.Driver)
	}
}
