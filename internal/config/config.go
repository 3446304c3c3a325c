package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL string
	APITimeout time.Duration

	ServerPort string

	SessionSecret string
	SessionTTL    time.Duration

	RedisAddr     string
	RedisPassword string

	S3Bucket        string
	S3Region        string
	S3AccessKey     string
	S3SecretKey     string
	MediaPublicBase string
}

func Load() *Config {
	// A missing .env is fine, plain env vars still apply.
	_ = godotenv.Load()

	return &Config{
		APIBaseURL: getEnv("API_BASE_URL", "https://temp1.jackpyp.xyz/api/v1"),
		APITimeout: getDuration("API_TIMEOUT", 80*time.Second),

		ServerPort: getEnv("SERVER_PORT", "3000"),

		SessionSecret: getEnv("SESSION_SECRET", "changeme"),
		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Region:        getEnv("S3_REGION", "ap-southeast-1"),
		S3AccessKey:     getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:     getEnv("S3_SECRET_KEY", ""),
		MediaPublicBase: getEnv("MEDIA_PUBLIC_BASE", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// MediaEnabled reports whether shop picture uploads have somewhere to go.
func (c *Config) MediaEnabled() bool {
	return c.S3Bucket != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}
