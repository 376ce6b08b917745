package middleware

type Config struct {
	AllowOrigins []string `yaml:"allow_origins"`
	RateLimit    float64  `yaml:"rate_limit_per_second"`
}
