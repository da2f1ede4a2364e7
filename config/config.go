package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds the runtime configuration, loaded from the environment
type Config struct {
	Port       string `envconfig:"PORT" default:"8000"`
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8080/api/v1"`
	JWTSecret  string `envconfig:"JWT_SECRET"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`

	// Storage backend for session carts: memory, file, redis or mongo
	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"file"`
	StorageDir     string `envconfig:"STORAGE_DIR" default:"./data"`
	RedisAddr      string `envconfig:"REDIS_ADDR"`
	MongoURI       string `envconfig:"MONGO_URI"`

	PostmarkAPIToken string `envconfig:"POSTMARK_API_TOKEN"`
	EmailSender      string `envconfig:"EMAIL_SENDER"`
}

// Load reads the configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "process environment")
	}
	return cfg, nil
}
