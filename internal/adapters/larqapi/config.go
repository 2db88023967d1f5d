package larqapi

import "time"

const defaultTimeout = 10 * time.Second

// Config holds backend API client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}
