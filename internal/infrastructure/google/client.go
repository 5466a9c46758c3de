package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/scenic-tour/internal/config"
	"github.com/scenic-tour/internal/domain"
	"github.com/scenic-tour/internal/domain/repository"
	"github.com/scenic-tour/internal/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Provider operations, used in errors, logs and metrics
const (
	opDirections = "directions"
	opNearby     = "nearby_search"
	opDetails    = "place_details"
)

const (
	directionsPath = "/maps/api/directions/json"
	nearbyPath     = "/maps/api/place/nearbysearch/json"
	detailsPath    = "/maps/api/place/details/json"
)

type client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	timeout     time.Duration
	maxRetries  int
	concurrency int
	limiter     *rate.Limiter
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewClient создает адаптер к Google Maps web services
func NewClient(cfg *config.GoogleConfig, m *metrics.Metrics, logger *zap.Logger) repository.RoutingGateway {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	return &client{
		httpClient:  &http.Client{},
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		timeout:     cfg.RequestTimeout,
		maxRetries:  cfg.MaxRetries,
		concurrency: concurrency,
		limiter:     rate.NewLimiter(limit, burst),
		metrics:     m,
		logger:      logger,
	}
}

// statusCarrier is implemented by every provider response through the embedded envelope
type statusCarrier interface {
	providerStatus() envelope
}

func (e envelope) providerStatus() envelope {
	return e
}

// getJSON performs a GET with retries and decodes the response into out.
// ZERO_RESULTS is returned as a provider error of kind NoRouteFound unless allowZero is set.
func (c *client) getJSON(ctx context.Context, op, path string, params url.Values, out statusCarrier, allowZero bool) error {
	params.Set("key", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(max(c.maxRetries, 0))), ctx)

	attempt := 0
	operation := func() error {
		attempt++
		err := c.doOnce(ctx, op, endpoint, out, allowZero)
		if err == nil {
			return nil
		}
		var pe *domain.ProviderError
		if errors.As(err, &pe) && (pe.Kind == domain.ProviderUnavailable || pe.Kind == domain.RateLimited || pe.Kind == domain.ProviderTimeout) && !permanentStatus(pe.Status) && ctx.Err() == nil {
			c.logger.Warn("Google API request failed, retrying",
				zap.String("op", op),
				zap.Int("attempt", attempt),
				zap.Error(err))
			return err
		}
		return backoff.Permanent(err)
	}

	err := backoff.Retry(operation, policy)
	if err == nil {
		return nil
	}

	var pe *domain.ProviderError
	if errors.As(err, &pe) {
		return err
	}
	return classifyTransportError(ctx, op, err)
}

func (c *client) doOnce(ctx context.Context, op, endpoint string, out statusCarrier, allowZero bool) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return classifyTransportError(ctx, op, err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &domain.ProviderError{Kind: domain.ProviderUnavailable, Op: op, Err: stripURL(err)}
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveProvider(op, "transport_error", time.Since(started))
		return classifyTransportError(reqCtx, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.metrics.ObserveProvider(op, fmt.Sprintf("http_%d", resp.StatusCode), time.Since(started))
		c.logger.Error("Google API returned error",
			zap.String("op", op),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))

		kind := domain.ProviderUnavailable
		if resp.StatusCode == http.StatusTooManyRequests {
			kind = domain.RateLimited
		}
		status := fmt.Sprintf("HTTP %d", resp.StatusCode)
		if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			status = statusRequestDenied
		}
		return &domain.ProviderError{Kind: kind, Op: op, Status: status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.metrics.ObserveProvider(op, "decode_error", time.Since(started))
		if reqCtx.Err() != nil {
			return classifyTransportError(reqCtx, op, err)
		}
		return &domain.ProviderError{Kind: domain.ProviderUnavailable, Op: op, Status: statusInvalidRequest, Err: fmt.Errorf("decode response: %w", err)}
	}

	env := out.providerStatus()
	c.metrics.ObserveProvider(op, env.Status, time.Since(started))

	if env.Status == statusOK || (allowZero && env.Status == statusZeroResults) {
		return nil
	}

	c.logger.Warn("Google API returned non-OK status",
		zap.String("op", op),
		zap.String("status", env.Status),
		zap.String("error_message", env.ErrorMessage))
	return statusError(op, env.Status)
}

// statusError maps a provider status onto a typed error
func statusError(op, status string) *domain.ProviderError {
	kind := domain.ProviderUnavailable
	switch status {
	case statusZeroResults:
		kind = domain.NoRouteFound
	case statusNotFound:
		kind = domain.InvalidLocation
	case statusOverQueryLimit:
		kind = domain.RateLimited
	case statusMaxRoute:
		kind = domain.NoRouteFound
	}
	return &domain.ProviderError{Kind: kind, Op: op, Status: status}
}

// permanentStatus reports statuses a new attempt cannot fix
func permanentStatus(status string) bool {
	switch status {
	case statusRequestDenied, statusInvalidRequest, statusMaxWaypoints:
		return true
	}
	return false
}

// classifyTransportError turns network and context failures into typed errors.
// The request URL carries the API key, so url.Error wrappers are dropped.
func classifyTransportError(ctx context.Context, op string, err error) error {
	err = stripURL(err)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &domain.ProviderError{Kind: domain.ProviderTimeout, Op: op, Err: err}
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &domain.ProviderError{Kind: domain.ProviderTimeout, Op: op, Err: err}
	}
	return &domain.ProviderError{Kind: domain.ProviderUnavailable, Op: op, Err: err}
}

func stripURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s request: %w", strings.ToLower(uerr.Op), uerr.Err)
	}
	return err
}
