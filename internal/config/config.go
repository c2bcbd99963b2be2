package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// GatewayAddr is the base origin of the remote event service.
	GatewayAddr string
	// RedisAddr enables the redis-backed profile store and event broker.
	// Empty means in-process equivalents.
	RedisAddr string
	BindAddr  string
}

func Load() Config {
	// .env is optional, real deployments use the environment
	_ = godotenv.Load()

	cfg := Config{
		GatewayAddr: os.Getenv("GATEWAY_ADDR"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		BindAddr:    os.Getenv("BIND_ADDR"),
	}
	if cfg.BindAddr == "" {
		cfg.BindAddr = ":8080"
	}
	return cfg
}
