package usecase

type Config struct {
	PointerCacheTTL int64 `yaml:"pointer_cache_ttl_in_ms"`
}
