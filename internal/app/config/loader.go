package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var defaults = map[string]any{
	"LOG_LEVEL":                   "info",
	"HTTP_PORT":                   8080,
	"HTTP_TIMEOUT":                60 * time.Second,
	"HTTP_CORS_ALLOWED_ORIGINS":   []string{"*"},
	"REDIS_ADDR":                  "localhost:6379",
	"GDS_BASE_URL":                "https://test.api.amadeus.com",
	"GDS_CURRENCY":                "INR",
	"GDS_RESULT_CAP":              10,
	"GDS_TIMEOUT":                 30 * time.Second,
	"CHECKOUT_SELECTION_TTL":      30 * time.Minute,
	"CHECKOUT_REDIRECT_DELAY":     3 * time.Second,
	"CHECKOUT_PHONE_COUNTRY_CODE": "91",
	"CHECKOUT_LOCK_TIMEOUT":       2 * time.Minute,
	"BOOKING_STORE_DRIVER":        "redis",
	"BOOKING_STORE_KEY":           "bookings",
	"MONGO_DATABASE":              "travel",
	"VISA_API_URL":                "https://visa-requirement.p.rapidapi.com/",
	"VISA_API_HOST":               "visa-requirement.p.rapidapi.com",
	"VISA_TIMEOUT":                15 * time.Second,
	"MAILER_DRIVER":               "emailjs",
	"MAILER_TIMEOUT":              15 * time.Second,
	"EMAILJS_API_URL":             "https://api.emailjs.com/api/v1.0/email/send",
	"WHATSAPP_PHONE":              "919856664440",
	"METRICS_NAMESPACE":           "travel_booking",
}

// MustInitConfig initializes configuration from .env file or environment variables.
// If configFile exists, it loads from the file. Otherwise, it automatically binds
// environment variables based on the Config struct's mapstructure tags.
func MustInitConfig(configFile string) Config {
	cfg, err := LoadConfig(configFile)
	if err != nil {
		slog.Error("cannot load config", slog.String("error", err.Error()))
		panic(err)
	}

	return cfg
}

// LoadConfig is MustInitConfig without the panic.
func LoadConfig(configFile string) (Config, error) {
	var (
		vpr = viper.New()
		cfg Config
	)

	for key, value := range defaults {
		vpr.SetDefault(key, value)
	}

	vpr.AutomaticEnv()

	vpr.SetConfigFile(configFile)
	vpr.SetConfigType("env")

	if err := vpr.ReadInConfig(); err != nil {
		slog.Warn("config file not found or cannot be read, using environment variables",
			slog.String("file", configFile),
			slog.String("error", err.Error()))
	} else {
		slog.Info("config file loaded successfully", slog.String("file", configFile))
	}

	bindEnvFromStruct(vpr)

	if err := vpr.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// bookingGDSCalls is the number of sequential GDS calls made while the booking lock is held.
const bookingGDSCalls = 3

func (c Config) validate() error {
	if minLock := bookingGDSCalls * c.GDS.Timeout; c.Checkout.LockTimeout < minLock {
		return fmt.Errorf("CHECKOUT_LOCK_TIMEOUT %s must be at least %s (%d x GDS_TIMEOUT)",
			c.Checkout.LockTimeout, minLock, bookingGDSCalls)
	}

	switch c.BookingStore.Driver {
	case "memory", "redis":
	case "postgres":
		if c.DB.DSN == "" {
			return fmt.Errorf("DB_DSN is required for booking store driver %q", c.BookingStore.Driver)
		}
	case "mongo":
		if c.Mongo.URI == "" {
			return fmt.Errorf("MONGO_URI is required for booking store driver %q", c.BookingStore.Driver)
		}
	default:
		return fmt.Errorf("unknown booking store driver %q", c.BookingStore.Driver)
	}

	switch c.Mailer.Driver {
	case "emailjs", "gmail", "log":
	default:
		return fmt.Errorf("unknown mailer driver %q", c.Mailer.Driver)
	}

	return nil
}

// bindEnvFromStruct automatically binds environment variables based on mapstructure tags using reflection
func bindEnvFromStruct(vpr *viper.Viper) {
	bindEnvFromType(vpr, reflect.TypeOf(Config{}))
}

func bindEnvFromType(vpr *viper.Viper, t reflect.Type) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" || tag == "-" {
			if field.Anonymous && field.Type.Kind() == reflect.Struct {
				bindEnvFromType(vpr, field.Type)
			}
			continue
		}

		parts := strings.Split(tag, ",")
		envVar := parts[0]
		isSquash := false
		for _, p := range parts {
			if strings.TrimSpace(p) == "squash" {
				isSquash = true
				break
			}
		}

		if isSquash && field.Type.Kind() == reflect.Struct {
			bindEnvFromType(vpr, field.Type)
			continue
		}

		if envVar != "" {
			_ = vpr.BindEnv(envVar)

			// struct and []struct values may be provided as JSON strings
			if (field.Type.Kind() == reflect.Slice && field.Type.Elem().Kind() == reflect.Struct) ||
				field.Type.Kind() == reflect.Struct {
				val := vpr.Get(envVar)
				if s, ok := val.(string); ok && s != "" {
					var jsonVal interface{}
					if err := json.Unmarshal([]byte(s), &jsonVal); err == nil {
						vpr.Set(envVar, jsonVal)
					}
				}
			}
		}
	}
}
