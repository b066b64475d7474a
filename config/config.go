package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port string

	MongoURI string
	MongoDB  string

	RedisAddr string // optional; logout revocation is disabled without it

	JWTSecret string
	TokenTTL  time.Duration

	// CORSDomain is the apex domain; subdomains and localhost are
	// derived from it at match time.
	CORSDomain string

	// Chat provider selection: "gemini" or "hf".
	ChatProvider string

	GeminiProject  string
	GeminiLocation string
	GeminiModel    string

	HFToken  string
	HFModels []string

	CVBucket string // optional; CV upload is disabled without it
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		MongoURI: os.Getenv("MONGO_URI"),
		MongoDB:  getEnv("MONGO_DB", "infoaidtech"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  parseDuration(getEnv("TOKEN_TTL", "720h")), // 30 days

		CORSDomain: getEnv("CORS_DOMAIN", "infoaidtech.net"),

		ChatProvider: getEnv("CHAT_PROVIDER", "gemini"),

		GeminiProject:  os.Getenv("GEMINI_PROJECT"),
		GeminiLocation: getEnv("GEMINI_LOCATION", "us-central1"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		HFToken:  os.Getenv("HF_TOKEN"),
		HFModels: splitList(getEnv("HF_MODELS", strings.Join(defaultHFModels, ","))),

		CVBucket: os.Getenv("CV_BUCKET"),
	}
}

var defaultHFModels = []string{
	"microsoft/Phi-3.5-mini-instruct",
	"mistralai/Mistral-7B-Instruct-v0.3",
	"HuggingFaceH4/zephyr-7b-beta",
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 720 * time.Hour
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
