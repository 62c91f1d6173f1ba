package config

import (
	"fmt"
	"os"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/orderpipe/order-producer/internal/destination"
	"github.com/orderpipe/order-producer/internal/metrics"
)

// Config holds the environment-driven settings for the service.
type Config struct {
	// WebhookParam is the SSM parameter holding the destination URL.
	WebhookParam string `validate:"required"`
	// MetricsNamespace is the CloudWatch namespace for pipeline counters.
	MetricsNamespace string `validate:"required"`
	// Addr is the listen address when running as a local HTTP server.
	Addr string `validate:"required,contains=:"`
	// RunLocal switches from the Lambda adapter to a plain HTTP server.
	RunLocal bool
}

// Load reads configuration from the environment, applies defaults, and
// validates the result. All violations are reported together.
func Load() (Config, error) {
	cfg := Config{
		WebhookParam:     envOr("WEBHOOK_PARAM", destination.DefaultWebhookParam),
		MetricsNamespace: envOr("METRICS_NAMESPACE", metrics.DefaultNamespace),
		Addr:             envOr("LOCAL_ADDR", ":8080"),
		RunLocal:         os.Getenv("RUN_LOCAL") == "true",
	}

	v := validatorv10.New()
	if err := v.Struct(cfg); err != nil {
		if ve, ok := err.(validatorv10.ValidationErrors); ok {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.StructNamespace(), fe.Tag()))
			}
			return cfg, fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
