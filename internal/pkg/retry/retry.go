package retry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	defaultAttempts = 1
	defaultMaxDelay = 2 * time.Second
	defaultDelay    = 100 * time.Millisecond
)

type RetryConfig struct {
	Attempts uint          `env:"ATTEMPTS" envDefault:"1"`
	Delay    time.Duration `env:"DELAY" envDefault:"100ms"`
	MaxDelay time.Duration `env:"MAX_DELAY" envDefault:"2s"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"0s"`
}

// StatusCoder is implemented by transport errors that carry an upstream HTTP status.
type StatusCoder interface {
	HTTPStatus() int
}

// Transient is implemented by errors raised before any response arrived.
type Transient interface {
	Transient() bool
}

func (rc *RetryConfig) ToRetryOptions() []retry.Option {
	attempts := rc.Attempts
	if attempts == 0 {
		attempts = defaultAttempts
	}
	return []retry.Option{
		retry.Attempts(attempts),
		retry.MaxDelay(rc.MaxDelay),
		retry.Delay(rc.Delay),
		retry.LastErrorOnly(true),
		retry.RetryIf(IsRetryable),
	}
}

// Do runs fn under the retry policy, bounded by Timeout when set.
func (rc *RetryConfig) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if rc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rc.Timeout)
		defer cancel()
	}

	opts := append(rc.ToRetryOptions(), retry.Context(ctx))
	return retry.Do(func() error { return fn(ctx) }, opts...)
}

// IsRetryable reports whether err is worth another attempt. Only transient
// network failures and 5xx/429 responses qualify; context errors never do.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var sc StatusCoder
	if errors.As(err, &sc) {
		status := sc.HTTPStatus()
		return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
	}

	var tr Transient
	if errors.As(err, &tr) {
		return tr.Transient()
	}

	return false
}

func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		Attempts: defaultAttempts,
		Delay:    defaultDelay,
		MaxDelay: defaultMaxDelay,
	}
}
