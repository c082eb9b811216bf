package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config ค่าตั้งค่าทั้งหมดของ service อ่านจาก environment (.env ถ้ามี)
type Config struct {
	AppURI         string `env:"APP_URI" envDefault:"8888"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"*"`
	StaticDir      string `env:"STATIC_DIR" envDefault:"./static"`

	// RedisURI ว่าง = ปิด roster events
	RedisURI string `env:"REDIS_URI"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load โหลด .env แล้ว parse environment เข้า Config
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) ListenAddr() string {
	return ":" + c.AppURI
}

func (c *Config) RosterEventsEnabled() bool {
	return c.RedisURI != ""
}
