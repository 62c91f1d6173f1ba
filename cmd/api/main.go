package main

import (
	"context"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"github.com/orderpipe/order-producer/internal/aws"
	"github.com/orderpipe/order-producer/internal/config"
	"github.com/orderpipe/order-producer/internal/destination"
	"github.com/orderpipe/order-producer/internal/handlers"
	"github.com/orderpipe/order-producer/internal/logging"
	"github.com/orderpipe/order-producer/internal/metrics"
	"github.com/orderpipe/order-producer/internal/publisher"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestID())
	r.Use(handlers.HealthCheck())

	handlers.RegisterOrderRoutes(r, cfg)

	return r
}

func main() {
	logger := logging.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	hcfg := handlers.HandlerConfig{
		Resolver:  destination.NewResolver(clients.SSM, cfg.WebhookParam),
		Publisher: publisher.NewPublisher(http.DefaultClient),
		Metrics:   metrics.NewEmitter(clients.CloudWatch, cfg.MetricsNamespace, logger),
		Logger:    logger,
	}

	r := setupRouter(hcfg)

	// run a plain HTTP server for development when RUN_LOCAL=true
	if cfg.RunLocal {
		logger.Info("running local server", "addr", cfg.Addr)
		if err := r.Run(cfg.Addr); err != nil {
			log.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
