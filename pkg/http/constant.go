package http

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is the default number of retries after the first attempt.
	DefaultRetries = 2
	// DefaultRetryWait is the base delay; attempt n waits RetryWait * 2^(n-1) plus up to 10% jitter.
	DefaultRetryWait = 1 * time.Second
	// jitterRatio bounds the random extra delay as a fraction of the backoff.
	jitterRatio = 0.1
)

// DefaultConfig returns default ClientConfig.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	}
}
