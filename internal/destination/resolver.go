package destination

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/smithy-go"

	internalaws "github.com/orderpipe/order-producer/internal/aws"
)

// DefaultWebhookParam is the Parameter Store key holding the sink URL.
const DefaultWebhookParam = "/order/producer/webhook-url"

// ErrEmptyParameter is returned when the parameter exists but has no value.
var ErrEmptyParameter = errors.New("webhook URL is undefined in parameter store")

// Resolver looks up the destination webhook URL from SSM Parameter Store and
// caches it for the lifetime of the process. There is no invalidation; a
// rotated URL requires a restart. A failed lookup is not cached, so the next
// invocation fetches again.
type Resolver struct {
	client    internalaws.SSMAPI
	paramName string

	mu  sync.Mutex
	url string
}

// NewResolver returns a Resolver bound to a parameter name.
func NewResolver(client internalaws.SSMAPI, paramName string) *Resolver {
	if paramName == "" {
		paramName = DefaultWebhookParam
	}
	return &Resolver{
		client:    client,
		paramName: paramName,
	}
}

// WebhookURL returns the cached destination URL, fetching it on first use.
// The mutex is held across the fetch so a process performs at most one
// lookup; concurrent callers block until the slot is populated.
func (r *Resolver) WebhookURL(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.url != "" {
		return r.url, nil
	}

	out, err := r.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &r.paramName,
		WithDecryption: awsBool(true),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("get parameter %s (%s): %w", r.paramName, apiErr.ErrorCode(), err)
		}
		return "", fmt.Errorf("get parameter %s: %w", r.paramName, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil || *out.Parameter.Value == "" {
		return "", ErrEmptyParameter
	}

	r.url = *out.Parameter.Value
	return r.url, nil
}

func awsBool(b bool) *bool { return &b }
