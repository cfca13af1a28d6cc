package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"audiblebooks/internal/infrastructure/broker"
	"audiblebooks/internal/infrastructure/database"
	"audiblebooks/internal/infrastructure/filestore"
	"audiblebooks/internal/presentation/middleware"
	"audiblebooks/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	HTTPServer      HTTPServerConfig       `yaml:"http_server"`
	DBConfig        database.Config        `yaml:"db_config"`
	FileStore       filestore.Config       `yaml:"filestore"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Auth            middleware.Config      `yaml:"-"`
	Logger          logger.Config          `yaml:"logger"`
}

type HTTPServerConfig struct {
	Address   string `yaml:"address"`
	BodyLimit string `yaml:"body_limit"`
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
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.Auth.Secret = os.Getenv("JWT_SECRET")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.HTTPServer.Address == "" {
		c.HTTPServer.Address = ":4000"
	}
	if c.HTTPServer.BodyLimit == "" {
		c.HTTPServer.BodyLimit = "200M"
	}

	return nil
}
