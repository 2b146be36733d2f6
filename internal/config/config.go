package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// Server
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// DB
	DatabaseURL string `envconfig:"DATABASE_URL" default:"staysync.db"`
	// Every repository call runs under this deadline; a missed deadline is
	// reported to the caller as a transient unavailability.
	RepositoryTimeout time.Duration `envconfig:"REPOSITORY_TIMEOUT" default:"5s"`
	// Identity
	JWTSecret string        `envconfig:"JWT_SECRET" default:"change-me-jwt-secret"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`
	// CORS
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:8080,http://localhost:5173"`
	// Payment processor (external checkout, treated as a black box that
	// redirects back with a session outcome)
	CheckoutBaseURL     string `envconfig:"CHECKOUT_BASE_URL" default:"https://checkout.staysync.dev/session"`
	CheckoutCallbackURL string `envconfig:"CHECKOUT_CALLBACK_URL" default:"http://localhost:8080/api/v1/payments/callback"`
	PaymentSuccessPage  string `envconfig:"PAYMENT_SUCCESS_PAGE" default:"http://localhost:8080/payment-success"`
	PaymentCancelPage   string `envconfig:"PAYMENT_CANCEL_PAGE" default:"http://localhost:8080/payment-canceled"`
	DefaultCurrency     string `envconfig:"DEFAULT_CURRENCY" default:"inr"`
}

func Load() (App, error) {
	_ = godotenv.Load()

	var c App
	err := envconfig.Process("", &c)
	return c, err
}
