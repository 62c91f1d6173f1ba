package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/orderpipe/order-producer/internal/destination"
	"github.com/orderpipe/order-producer/internal/metrics"
	"github.com/orderpipe/order-producer/internal/order"
	"github.com/orderpipe/order-producer/internal/publisher"
)

// HandlerConfig groups dependencies for the order intake handler.
type HandlerConfig struct {
	Resolver  *destination.Resolver
	Publisher *publisher.Publisher
	Metrics   *metrics.Emitter
	Logger    *slog.Logger
}

const requestIDKey = "requestId"

// RequestID takes the inbound X-Request-Id or mints one, so every log line
// for a request can be correlated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-Id")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Header("X-Request-Id", rid)
		c.Next()
	}
}

// HealthCheck answers any path containing "healthCheck" before body handling.
func HealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.Contains(c.Request.URL.Path, "healthCheck") {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RegisterOrderRoutes installs the order intake endpoint. Any POSTed path is
// treated as an order submission, matching the original single-function
// deployment where routing happened upstream.
func RegisterOrderRoutes(r *gin.Engine, cfg HandlerConfig) {
	handle := orderHandler(cfg)

	r.POST("/orders", handle)
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodPost {
			handle(c)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})
}

func orderHandler(cfg HandlerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := requestLogger(c, cfg.Logger)

		src, err := decodeOrder(c.Request.Body)
		if err != nil {
			internalError(c, logger, "invalid request body", err)
			return
		}

		logger.Info("received request", "order", src)

		if errs := order.Validate(src); errs != nil {
			cfg.Metrics.Count(ctx, metrics.MetricValidationFailures)
			logger.Error("validation failed", "errors", errs)
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		canonical, err := order.Transform(src)
		if err != nil {
			internalError(c, logger, "transform failed", err)
			return
		}
		logger.Info("order transformed", "orderId", canonical.Order.ID)

		webhookURL, err := cfg.Resolver.WebhookURL(ctx)
		if err != nil {
			internalError(c, logger, "destination resolution failed", err)
			return
		}

		if err := cfg.Publisher.Publish(ctx, webhookURL, canonical); err != nil {
			cfg.Metrics.Count(ctx, metrics.MetricPublishFailures)
			internalError(c, logger, "webhook publish failed", err)
			return
		}

		cfg.Metrics.Count(ctx, metrics.MetricOrdersPublished)
		logger.Info("order published", "orderId", canonical.Order.ID)
		c.JSON(http.StatusOK, gin.H{"status": true, "orderId": canonical.Order.ID})
	}
}

// decodeOrder parses the request body into a SourceOrder. An empty body
// decodes as an empty order, which then fails required-field validation;
// malformed JSON is an internal error, not a validation error.
func decodeOrder(body io.Reader) (order.SourceOrder, error) {
	var src order.SourceOrder

	raw, err := io.ReadAll(body)
	if err != nil {
		return src, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return src, nil
	}
	if err := json.Unmarshal(raw, &src); err != nil {
		return src, err
	}
	return src, nil
}

func requestLogger(c *gin.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	if rid, ok := c.Get(requestIDKey); ok {
		logger = logger.With(requestIDKey, rid)
	}
	return logger
}

// internalError maps every non-validation failure to the generic 500
// contract: one message for clients, full detail in logs only.
func internalError(c *gin.Context, logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": "Internal server error",
		"error":   err.Error(),
	})
}
