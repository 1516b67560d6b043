package delivery

import (
	"math"
	"time"
)

const (
	DefaultBaseDelay   = 30 * time.Second
	DefaultMaxDelay    = time.Hour
	DefaultJitterFrac  = 0.2
	DefaultMaxAttempts = 5
)

// NextRetryDelay returns the delay before the given attempt number is
// retried. attempt is 1-based and counts the attempts already made. The
// delay doubles per attempt, is capped at maxDelay and carries a symmetric
// jitter of jitterFrac around the deterministic value. rnd must return a
// value in [0, 1).
func NextRetryDelay(attempt int, baseDelay, maxDelay time.Duration, jitterFrac float64, rnd func() float64) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	delay := float64(baseDelay) * math.Pow(2, float64(attempt-1))
	if delay > float64(maxDelay) {
		delay = float64(maxDelay)
	}

	if jitterFrac > 0 && rnd != nil {
		// rnd in [0,1) maps onto [-jitterFrac, +jitterFrac).
		delay *= 1 + jitterFrac*(2*rnd()-1)
	}
	if delay < 0 {
		delay = 0
	}
	return time.Duration(delay)
}
