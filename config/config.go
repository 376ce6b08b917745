package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/application/usecase"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/infrastructure/blob"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/infrastructure/database"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/infrastructure/minio"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/infrastructure/redis"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/presentation/middleware"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/pkg/otel"
)

const (
	DriverRedis = "redis"
	DriverMongo = "mongo"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment  string              `yaml:"environment"`
	Default      DefaultConfig       `yaml:"default"`
	Store        StoreConfig         `yaml:"store"`
	Redis        redis.Config        `yaml:"redis"`
	DBConfig     database.Config     `yaml:"db_config"`
	MinIOClient  minio.ClientConfig  `yaml:"minio_client"`
	MinIOFetcher minio.FetcherConfig `yaml:"minio_fetcher"`
	HTTPFetcher  blob.HTTPConfig     `yaml:"http_fetcher"`
	Retriever    usecase.Config      `yaml:"retriever"`
	Middleware   middleware.Config   `yaml:"middleware"`
	Telemetry    otel.Config         `yaml:"telemetry"`
	Logger       logger.Config       `yaml:"logger"`
}

type DefaultConfig struct {
	Address string `yaml:"address"`
}

type StoreConfig struct {
	Driver string `yaml:"driver"`
}

// secrets are only ever read from the environment.
type secrets struct {
	KVStoreURI    string `env:"KV_STORE_URI"`
	DatabaseURI   string `env:"DATABASE_URI"`
	MinIOUser     string `env:"MINIO_ROOT_USER"`
	MinIOPassword string `env:"MINIO_ROOT_PASSWORD"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	s := secrets{}
	if err := env.Parse(&s); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	config.Redis.URI = s.KVStoreURI
	config.DBConfig.URI = s.DatabaseURI
	config.MinIOClient.AccessKey = s.MinIOUser
	config.MinIOClient.SecretKey = s.MinIOPassword

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// StoreConfigured reports whether the credential of the selected store driver
// is present. Without it the service still starts and answers every
// structure request with a configuration error.
func (c *Config) StoreConfigured() bool {
	switch c.Store.Driver {
	case DriverMongo:
		return c.DBConfig.URI != ""
	default:
		return c.Redis.URI != ""
	}
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Default.Address == "" {
		c.Default.Address = ":8080"
	}

	if c.Store.Driver == "" {
		c.Store.Driver = DriverRedis
	}

	if c.Store.Driver != DriverRedis && c.Store.Driver != DriverMongo {
		return errors.New("store driver must be redis or mongo")
	}

	if c.Store.Driver == DriverMongo && c.DBConfig.DBName == "" {
		return errors.New("db_config.db_name is required for the mongo driver")
	}

	return nil
}
