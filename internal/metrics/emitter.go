package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	internalaws "github.com/orderpipe/order-producer/internal/aws"
)

// DefaultNamespace is the CloudWatch namespace metrics are published under.
const DefaultNamespace = "OrderProducer"

// Metric names emitted by the pipeline.
const (
	MetricOrdersPublished    = "OrdersPublished"
	MetricValidationFailures = "ValidationFailures"
	MetricPublishFailures    = "PublishFailures"
)

// Emitter records pipeline counters in CloudWatch. Emission is best-effort:
// a failed PutMetricData is logged and never fails the request. A nil
// *Emitter is a no-op so local runs can skip metrics entirely.
type Emitter struct {
	client    internalaws.CloudWatchAPI
	namespace string
	logger    *slog.Logger
	nowFunc   func() time.Time
}

// NewEmitter returns an Emitter publishing to the given namespace.
func NewEmitter(client internalaws.CloudWatchAPI, namespace string, logger *slog.Logger) *Emitter {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Emitter{
		client:    client,
		namespace: namespace,
		logger:    logger,
		nowFunc:   time.Now,
	}
}

// Count adds one to the named counter.
func (e *Emitter) Count(ctx context.Context, name string) {
	if e == nil || e.client == nil {
		return
	}
	now := e.nowFunc().UTC()
	_, err := e.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: &e.namespace,
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: &name,
				Timestamp:  &now,
				Unit:       cwtypes.StandardUnitCount,
				Value:      awsFloat(1),
			},
		},
	})
	if err != nil {
		e.logger.Warn("put metric data failed", "metric", name, "error", err)
	}
}

func awsFloat(f float64) *float64 { return &f }
