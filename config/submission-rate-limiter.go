package config

// Rate limit configuration for the public v1 API group
type RateLimitConfig struct {
	Rate  int // Maximum requests per minute per IP
	Burst int // Burst capacity
}

var DefaultRateLimitConfig = RateLimitConfig{
	Rate:  600,
	Burst: 100,
}
