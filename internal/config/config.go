package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type StoreBackend string

const (
	BackendFile   StoreBackend = "file"
	BackendSQLite StoreBackend = "sqlite"
)

type Config struct {
	// Server
	Port      int    `env:"PORT" envDefault:"3000"`
	StaticDir string `env:"STATIC_DIR" envDefault:"public"`

	// Completion provider (OpenAI-compatible)
	GroqAPIKey   string `env:"GROQ_API_KEY"`
	GroqBaseURL  string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	DefaultModel string `env:"DEFAULT_MODEL" envDefault:"gpt-oss-20b"`

	// Terminal client
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:3000"`
	ChatModel string `env:"CHAT_MODEL" envDefault:"deepseek-r1-distill-llama-70b"`

	// Persistence
	StoreBackend StoreBackend `env:"STORE_BACKEND" envDefault:"file"`
	StoreDir     string       `env:"STORE_DIR" envDefault:"data"`
	SQLitePath   string       `env:"SQLITE_PATH" envDefault:"data/conversations.db"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
