package config

import (
	"os"
	"strings"

	"github.com/cristiannav/swapstyle-backend/pkg/path"
	"github.com/joho/godotenv"
)

type IConfig interface {
	Get(key string) string
}

// Config resolves keys from the environment, prefixed by the deployment env
// (DEV_/TEST_/PROD_) the way the .env file lays them out.
type Config struct {
	Key map[string]string
	Env string
}

func NewConfig(env string) (*Config, error) {
	env = strings.ToUpper(env)

	basePath, err := os.Getwd()

	if err != nil {
		return nil, err
	}

	// .env is optional; real deployments configure through the process env
	if root, err := path.FindRoot(basePath, ".env", false); err == nil {
		if loadErr := godotenv.Load(root + "/.env"); loadErr != nil {
			return nil, loadErr
		}
	}

	return &Config{
		Key: map[string]string{
			"POSTGRES_DB_NAME":  getEnv(env+"_POSTGRES_DB_NAME", ""),
			"POSTGRES_USER":     getEnv(env+"_POSTGRES_USER", ""),
			"POSTGRES_PASSWORD": getEnv(env+"_POSTGRES_PASSWORD", ""),
			"POSTGRES_HOST":     getEnv(env+"_POSTGRES_HOST", "localhost"),
			"POSTGRES_PORT":     getEnv(env+"_POSTGRES_PORT", "5432"),
			"REDIS_HOST":        getEnv(env+"_REDIS_HOST", "localhost"),
			"REDIS_PORT":        getEnv(env+"_REDIS_PORT", "6379"),
			"JWT_SECRET":        getEnv(env+"_JWT_SECRET", ""),
			"PORT":              getEnv("PORT", "8080"),
			"LOG_LEVEL":         getEnv("LOG_LEVEL", "info"),
			"LOG_FORMAT":        getEnv("LOG_FORMAT", "text"),
		},
		Env: env,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c *Config) Get(key string) string {
	return c.Key[key]
}
