package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"log/slog"
	"net"
	"strings"
	"time"

	"tally/config"
	domainerrors "tally/internal/domain/errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// retryPolicy retries read-only store calls on transient connection failures
// with bounded exponential backoff. Write paths never go through it; a write
// retried after an ambiguous failure could apply twice.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	logger          *slog.Logger
}

func newRetryPolicy(cfg *config.RetryConfig, logger *slog.Logger) *retryPolicy {
	return &retryPolicy{
		maxAttempts:     cfg.MaxAttempts,
		initialInterval: cfg.InitialBackoff,
		maxInterval:     cfg.MaxBackoff,
		logger:          logger,
	}
}

// do runs fn, retrying transient failures up to maxAttempts total tries.
// When every attempt fails it returns the store-unavailable domain error so
// callers surface a 503 rather than a generic 500. A nil policy runs fn
// exactly once; repositories bound to a transaction carry no policy.
func (p *retryPolicy) do(ctx context.Context, op string, fn func() error) error {
	if p == nil {
		return fn()
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = p.initialInterval
	expBackoff.MaxInterval = p.maxInterval
	expBackoff.MaxElapsedTime = 0 // bounded by attempt count, not wall clock

	policy := backoff.WithMaxRetries(backoff.WithContext(expBackoff, ctx), uint64(p.maxAttempts-1))

	attempt := 0
	var permanentErr error
	err := backoff.RetryNotify(func() error {
		attempt++
		if err := fn(); err != nil {
			if !isTransient(err) {
				permanentErr = err

				return backoff.Permanent(err)
			}

			return err
		}

		return nil
	}, policy, func(err error, next time.Duration) {
		if p.logger != nil {
			p.logger.LogAttrs(ctx, slog.LevelWarn, "store call failed, retrying",
				slog.String("op", op),
				slog.Int("attempt", attempt),
				slog.Duration("backoff", next),
				slog.String("error", err.Error()),
			)
		}
	})
	if err == nil {
		return nil
	}

	if permanentErr != nil {
		return permanentErr
	}
	if ctx.Err() != nil {
		return err
	}

	return domainerrors.ErrStoreUnavailable.WrapMessage(op)
}

// isTransient reports whether the error looks like a connection-level
// failure worth another attempt. Record-not-found, constraint violations,
// and context cancellation are never retried.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "too many connections")
}
