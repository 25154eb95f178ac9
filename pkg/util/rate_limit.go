package util

import (
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

func NewValidLimiter(r rate.Limit, b int) (*rate.Limiter, error) {
	if b <= 0 || r <= 0 {
		return nil, fmt.Errorf("bad rate limit config, insufficient tokens (rate=%f, b=%d)", r, b)
	}
	return rate.NewLimiter(r, b), nil
}

// ParseRateLimitSyntax parses the rate limit syntax into a rate.Limiter
// sample inputs:
//
//	20/1s  (20 requests per second, burst 1)
//	5+3/1m (burst 5, 3 tokens per minute)
//	3m     (1 token per 3 minutes)
func ParseRateLimitSyntax(desc string) (*rate.Limiter, error) {
	var b = 0
	var r = 1.0
	var durStr string

	if _, err := fmt.Sscanf(desc, "%d+%f/%s", &b, &r, &durStr); err != nil {
		b = 1
		r = 1.0
		if _, err = fmt.Sscanf(desc, "%f/%s", &r, &durStr); err != nil {
			durStr = desc
			r = 1.0
		}
	}

	duration, err := time.ParseDuration(durStr)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit syntax %q, expect b+n/duration: %v", desc, err)
	}

	if r <= 0 || duration <= 0 {
		return nil, fmt.Errorf("invalid rate limit %q: rate and duration must be positive", desc)
	}

	return NewValidLimiter(rate.Every(time.Duration(float64(duration)/r)), b)
}
