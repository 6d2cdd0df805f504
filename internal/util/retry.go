// ABOUTME: Backoff calculation for retrying failed HTTP fetches
// ABOUTME: Used by the catalog crawler to space out repeat requests
package util

import (
	"math/rand/v2"
	"time"
)

// maxBackoff caps the delay between retries regardless of attempt count.
const maxBackoff = 30 * time.Second

// CalculateBackoff returns an exponential backoff for the given attempt with
// random jitter of ±25%. Attempt 0 (the first try) gets no delay. The delay
// doubles per attempt and is capped at 30 seconds before jitter.
func CalculateBackoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	// Bound the shift so high attempt counts cannot overflow.
	if attempt > 30 {
		attempt = 30
	}
	backoff := baseDelay * time.Duration(1<<uint(attempt))
	if backoff > maxBackoff || backoff < 0 {
		backoff = maxBackoff
	}
	jitter := time.Duration(rand.Int64N(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}
