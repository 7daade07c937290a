package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds retry configuration. Retries are used only for the ClickHouse
// sink; file processing in the aggregation pass never retries.
type Config struct {
	MaxAttempts     int           // Maximum number of attempts
	InitialDelay    time.Duration // Delay before the first retry
	MaxDelay        time.Duration // Upper bound for the backoff delay
	Multiplier      float64       // Exponential backoff multiplier
	RetryableErrors []string      // Error substrings considered transient
}

// DefaultConfig returns default retry configuration
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		Multiplier:   2.0,
		RetryableErrors: []string{
			"connection refused",
			"connection reset",
			"connection lost",
			"timeout",
			"network is unreachable",
			"no such host",
			"temporary failure",
			"code: 999", // ClickHouse: connection lost
			"code: 159", // ClickHouse: timeout exceeded
			"code: 210", // ClickHouse: connection pool timeout
		},
	}
}

// IsRetryableError reports whether err looks transient under cfg.
func IsRetryableError(err error, cfg Config) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	for _, pattern := range cfg.RetryableErrors {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// Do executes operation with exponential backoff until it succeeds, fails
// with a non-retryable error, runs out of attempts, or the context ends.
func Do(ctx context.Context, cfg Config, operation func() error) error {
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		}

		err := operation()
		if err == nil {
			if attempt > 1 {
				log.Info().Int("attempt", attempt).Msg("Operation succeeded after retry")
			}
			return nil
		}
		lastErr = err

		if !IsRetryableError(err, cfg) {
			return err
		}
		if attempt >= cfg.MaxAttempts {
			break
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", cfg.MaxAttempts).
			Dur("retry_delay", delay).
			Msg("Operation failed, retrying")

		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return fmt.Errorf("operation failed after %d attempts: %w", cfg.MaxAttempts, lastErr)
}
