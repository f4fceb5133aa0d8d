package config

import "os"

// Config holds application configuration loaded from environment variables.
type Config struct {
	ServerURL   string
	Username    string
	Password    string
	Format      string
	AgentLevel  string
	DatabaseURL string
	ModelPath   string
}

// Load reads configuration from environment variables with sensible defaults.
// An empty DATABASE_URL disables persistence.
func Load() *Config {
	return &Config{
		ServerURL:   envOrDefault("SERVER_URL", "wss://sim.psim.us/showdown/websocket"),
		Username:    envOrDefault("SHOWDOWN_USER", "hli605"),
		Password:    os.Getenv("SHOWDOWN_PASS"),
		Format:      envOrDefault("SHOWDOWN_FORMAT", "gen9ubers"),
		AgentLevel:  envOrDefault("AGENT_LEVEL", "heuristic"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ModelPath:   envOrDefault("MODEL_PATH", "models"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
