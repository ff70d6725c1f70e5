package config

import "os"

// Config holds server-shell settings sourced from the environment.
type Config struct {
	MongoURI       string
	RedisAddr      string
	HTTPPort       string
	RulesPath      string // optional YAML rule-set override; empty uses the compiled-in default
	AdjudicatorURL string // optional external hours-adjudication service
}

func Load() *Config {
	return &Config{
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		RulesPath:      getEnv("RULES_PATH", ""),
		AdjudicatorURL: getEnv("ADJUDICATOR_URL", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
