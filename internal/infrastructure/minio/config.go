package minio

type ClientConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	Secure    bool   `yaml:"secure"`
}

type FetcherConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}
