// Package timex holds small time helpers shared by the HAL.
package timex

import "time"

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// Ms converts a millisecond count from config or a control payload.
// Negative counts become 0 so callers fall back to their defaults.
func Ms(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Millisecond
}
