package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel     LogLeveler   `mapstructure:"LOG_LEVEL"`
	HTTP         HTTP         `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	DB           DB           `mapstructure:",squash"`
	Mongo        Mongo        `mapstructure:",squash"`
	GDS          GDS          `mapstructure:",squash"`
	Checkout     Checkout     `mapstructure:",squash"`
	BookingStore BookingStore `mapstructure:",squash"`
	Visa         Visa         `mapstructure:",squash"`
	Mailer       Mailer       `mapstructure:",squash"`
	WhatsApp     WhatsApp     `mapstructure:",squash"`
	Metrics      Metrics      `mapstructure:",squash"`
}

type HTTP struct {
	Port               int           `mapstructure:"HTTP_PORT"`
	Timeout            time.Duration `mapstructure:"HTTP_TIMEOUT"`
	CORSAllowedOrigins []string      `mapstructure:"HTTP_CORS_ALLOWED_ORIGINS"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// DB is only used when BOOKING_STORE_DRIVER=postgres.
type DB struct {
	DSN                   string        `mapstructure:"DB_DSN"`
	MaxOpenConnections    int           `mapstructure:"DB_MAX_OPEN_CONNECTIONS"`
	MaxIdleConnections    int           `mapstructure:"DB_MAX_IDLE_CONNECTIONS"`
	MaxConnectionLifetime time.Duration `mapstructure:"DB_MAX_CONNECTIONS_LIFETIME"`
	MaxConnectionIdleTime time.Duration `mapstructure:"DB_MAX_CONNECTION_IDLE_TIME"`
}

// Mongo is only used when BOOKING_STORE_DRIVER=mongo.
type Mongo struct {
	URI      string `mapstructure:"MONGO_URI"`
	Database string `mapstructure:"MONGO_DATABASE"`
	Username string `mapstructure:"MONGO_USERNAME"`
	Password string `mapstructure:"MONGO_PASSWORD"`
}

// GDS holds the flight distribution API configuration.
type GDS struct {
	BaseURL      string        `mapstructure:"GDS_BASE_URL"`
	ClientID     string        `mapstructure:"GDS_CLIENT_ID"`
	ClientSecret string        `mapstructure:"GDS_CLIENT_SECRET"`
	TokenCache   bool          `mapstructure:"GDS_TOKEN_CACHE"`
	Currency     string        `mapstructure:"GDS_CURRENCY"`
	ResultCap    int           `mapstructure:"GDS_RESULT_CAP"`
	Timeout      time.Duration `mapstructure:"GDS_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"GDS_RATE_LIMIT"`
}

type Checkout struct {
	SelectionTTL  time.Duration `mapstructure:"CHECKOUT_SELECTION_TTL"`
	RedirectDelay time.Duration `mapstructure:"CHECKOUT_REDIRECT_DELAY"`
	CountryCode   string        `mapstructure:"CHECKOUT_PHONE_COUNTRY_CODE"`
	// LockTimeout bounds the in-flight booking lock. It must cover the token, pricing
	// and order calls of one booking.
	LockTimeout   time.Duration `mapstructure:"CHECKOUT_LOCK_TIMEOUT"`
}

type BookingStore struct {
	Driver string `mapstructure:"BOOKING_STORE_DRIVER"`
	Key    string `mapstructure:"BOOKING_STORE_KEY"`
}

type Visa struct {
	APIURL  string        `mapstructure:"VISA_API_URL"`
	APIHost string        `mapstructure:"VISA_API_HOST"`
	APIKey  string        `mapstructure:"VISA_API_KEY"`
	Timeout time.Duration `mapstructure:"VISA_TIMEOUT"`
}

type EmailJS struct {
	APIURL             string `mapstructure:"EMAILJS_API_URL"`
	ServiceID          string `mapstructure:"EMAILJS_SERVICE_ID"`
	PublicKey          string `mapstructure:"EMAILJS_PUBLIC_KEY"`
	AccessToken        string `mapstructure:"EMAILJS_ACCESS_TOKEN"`
	TeamTemplateID     string `mapstructure:"EMAILJS_TEAM_TEMPLATE_ID"`
	CustomerTemplateID string `mapstructure:"EMAILJS_CUSTOMER_TEMPLATE_ID"`
}

type Gmail struct {
	ClientID     string `mapstructure:"GMAIL_CLIENT_ID"`
	ClientSecret string `mapstructure:"GMAIL_CLIENT_SECRET"`
	RefreshToken string `mapstructure:"GMAIL_REFRESH_TOKEN"`
	Sender       string `mapstructure:"GMAIL_SENDER"`
}

type Mailer struct {
	Driver    string        `mapstructure:"MAILER_DRIVER"`
	TeamEmail string        `mapstructure:"MAILER_TEAM_EMAIL"`
	Timeout   time.Duration `mapstructure:"MAILER_TIMEOUT"`
	EmailJS   EmailJS       `mapstructure:",squash"`
	Gmail     Gmail         `mapstructure:",squash"`
}

type WhatsApp struct {
	Phone string `mapstructure:"WHATSAPP_PHONE"`
}

type Metrics struct {
	Namespace string `mapstructure:"METRICS_NAMESPACE"`
}
