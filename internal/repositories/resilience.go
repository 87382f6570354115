package repositories

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

// BackoffConfig controls exponential backoff between retries.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

var (
	errRateLimited = errors.New("rate limited")
	errServerError = errors.New("server error")
	ErrCircuitOpen = errors.New("circuit breaker open")
)

// doWithResilience runs send under the circuit breaker and retries network
// failures, 429 and 5xx answers with exponential backoff. Any other status is
// returned to the caller untouched: the provider reports 4xx errors in the body.
func doWithResilience(
	ctx context.Context,
	backoff BackoffConfig,
	cb *gobreaker.CircuitBreaker,
	send func(ctx context.Context) (*resty.Response, error),
) (*resty.Response, error) {
	var attempt int

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		result, err := cb.Execute(func() (interface{}, error) {
			resp, sendErr := send(ctx)
			if sendErr != nil {
				return nil, sendErr
			}

			if resp.StatusCode() == http.StatusTooManyRequests {
				return nil, errRateLimited
			}
			if resp.StatusCode() >= 500 {
				return nil, fmt.Errorf("%w: %d", errServerError, resp.StatusCode())
			}

			return resp, nil
		})

		if err == nil {
			resp, ok := result.(*resty.Response)
			if !ok {
				return nil, fmt.Errorf("unexpected result type from circuit breaker")
			}
			return resp, nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}

		if ctx.Err() != nil || attempt >= backoff.MaxRetries {
			return nil, err
		}

		delay := backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > backoff.MaxInterval && backoff.MaxInterval > 0 {
			delay = backoff.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}

func newCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}
