package blob

type HTTPConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}
