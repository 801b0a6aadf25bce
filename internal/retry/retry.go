// Package retry executes remote operations under a bounded retry budget
// with exponential backoff and jitter. Failures are first classified:
// only transient classes (rate limit, server error, network error) are
// retried, everything else is returned to the caller immediately.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"net"
	"net/url"
	"time"

	"sharesync/pkg/api"
)

// Class — класс отказа, определяющий, имеет ли смысл повтор.
type Class string

const (
	// ClassTerminal — ошибка не является временной; повтор бессмыслен.
	ClassTerminal Class = ""
	// ClassRateLimited — сервер ответил 429.
	ClassRateLimited Class = "rate_limited"
	// ClassServerError — сервер ответил 5xx.
	ClassServerError Class = "server_error"
	// ClassNetworkError — запрос не дошёл до сервера (сеть, таймаут).
	ClassNetworkError Class = "network_error"
)

// Retryable reports whether the class is worth retrying.
func (c Class) Retryable() bool {
	return c != ClassTerminal
}

// Classify определяет класс отказа.
// Ошибки со статусом: 429 → ClassRateLimited, 5xx → ClassServerError.
// Ошибки без статуса, похожие на сетевые — ClassNetworkError.
// Всё остальное (валидация, права, 4xx) — ClassTerminal.
func Classify(err error) Class {
	if err == nil {
		return ClassTerminal
	}

	if status, ok := api.StatusOf(err); ok {
		switch {
		case status == 429:
			return ClassRateLimited
		case status >= 500 && status <= 599:
			return ClassServerError
		default:
			return ClassTerminal
		}
	}

	if isNetworkError(err) {
		return ClassNetworkError
	}

	return ClassTerminal
}

// isNetworkError распознает сетевые отказы транспортного уровня.
func isNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		// url.Error без вложенного статуса — транспортная ошибка
		return true
	}

	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// Backoff computes the delay before attempt attemptIndex (0-based):
// round(base * 2^attemptIndex * (1 + random*jitterRatio)).
func Backoff(base time.Duration, attemptIndex int, jitterRatio float64) time.Duration {
	raw := float64(base) * math.Pow(2, float64(attemptIndex)) * (1 + rand.Float64()*jitterRatio)
	return time.Duration(math.Round(raw))
}

// RetryInfo передается в OnRetry перед каждым повтором.
type RetryInfo struct {
	Err       error
	RequestID string
	Reason    Class
	Attempt   int
	Delay     time.Duration
}

// Options управляют бюджетом повторов одной операции.
type Options struct {
	OnRetry     func(RetryInfo)
	RequestID   string
	Attempts    int
	Backoff     time.Duration
	JitterRatio float64
}

// Defaults for zero-valued Options fields.
const (
	DefaultAttempts    = 3
	DefaultBackoff     = 350 * time.Millisecond
	DefaultJitterRatio = 0.25
)

func (o Options) withDefaults() Options {
	if o.Attempts <= 0 {
		o.Attempts = DefaultAttempts
	}
	if o.Backoff <= 0 {
		o.Backoff = DefaultBackoff
	}
	if o.JitterRatio <= 0 {
		o.JitterRatio = DefaultJitterRatio
	}
	return o
}

// Do выполняет op под бюджетом повторов.
// Каждый transient-отказ (кроме последней попытки) порождает вызов
// OnRetry и cancellable-паузу; terminal-отказ возвращается сразу.
func Do(ctx context.Context, op func(ctx context.Context) error, opts Options) error {
	opts = opts.withDefaults()

	var lastErr error
	for attempt := 0; attempt < opts.Attempts; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}

		class := Classify(lastErr)
		if !class.Retryable() || attempt == opts.Attempts-1 {
			return lastErr
		}

		delay := Backoff(opts.Backoff, attempt, opts.JitterRatio)
		if opts.OnRetry != nil {
			opts.OnRetry(RetryInfo{
				Attempt:   attempt + 1,
				Delay:     delay,
				Reason:    class,
				Err:       lastErr,
				RequestID: opts.RequestID,
			})
		}

		if err := Sleep(ctx, delay); err != nil {
			return err
		}
	}

	return lastErr
}

// Sleep waits for d or until ctx is cancelled, whichever happens first.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
