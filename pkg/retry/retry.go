// Package retry waits out transient failures with bounded exponential
// backoff. The tracker uses it on startup while postgres finishes
// coming up.
package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// Policy describes how many times to try and how long to wait between
// tries.
type Policy struct {
	// Attempts is the total number of tries, including the first one.
	Attempts int
	// BaseDelay is the wait after the first failed try.
	BaseDelay time.Duration
	// MaxDelay caps the grown delay.
	MaxDelay time.Duration
	// Factor multiplies the delay after every failed try.
	Factor float64
	// Transient lists lowercase substrings of errors worth retrying.
	// An empty list retries every error.
	Transient []string
}

// ConnectPolicy returns the policy used for the postgres connection,
// retrying only the failures that resolve themselves once the database
// is up.
func ConnectPolicy() Policy {
	return Policy{
		Attempts:  5,
		BaseDelay: time.Second,
		MaxDelay:  30 * time.Second,
		Factor:    2.0,
		Transient: []string{
			"connection refused",
			"connection reset",
			"i/o timeout",
			"dial tcp",
			"the database system is starting up",
			"too many connections",
		},
	}
}

// Do runs fn up to p.Attempts times, sleeping between tries. It returns
// fn's first success, the first non-transient error, or the last error
// once the attempts are spent. Cancelling ctx stops the loop.
func Do[T any](ctx context.Context, p Policy, fn func() (T, error)) (T, error) {
	var zero T
	if p.Attempts <= 0 {
		return zero, fmt.Errorf("retry: attempts must be positive, got %d", p.Attempts)
	}

	var lastErr error
	for attempt := 0; attempt < p.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !p.Retryable(err) {
			return zero, err
		}
		lastErr = err

		if attempt == p.Attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(p.backoff(attempt)):
		}
	}
	return zero, lastErr
}

// Retryable reports whether err matches the policy's transient list.
func (p Policy) Retryable(err error) bool {
	if err == nil {
		return false
	}
	if len(p.Transient) == 0 {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, fragment := range p.Transient {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}

// backoff returns the capped exponential delay for the given attempt,
// jittered by up to ±10% so restarting replicas do not reconnect in
// lockstep.
func (p Policy) backoff(attempt int) time.Duration {
	delay := float64(p.BaseDelay) * math.Pow(p.Factor, float64(attempt))
	if max := float64(p.MaxDelay); delay > max {
		delay = max
	}
	//nolint:gosec // jitter does not need a cryptographic source
	jitter := delay * 0.1 * (rand.Float64()*2 - 1)
	return time.Duration(delay + jitter)
}
