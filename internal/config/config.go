package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Reward policy variants selectable via REWARD_POLICY.
const (
	RewardPolicyStreak = "streak"
	RewardPolicyRandom = "random"
)

// Config holds the application configuration.
type Config struct {
	AppEnv          string
	Debug           bool
	Version         string
	BotToken        string
	SentryDSN       string
	MongoDBURI      string
	MongoDBDatabase string
	DataFile        string
	DefaultLanguage string
	RewardPolicy    string
	RankLimit       int
}

// LoadConfig loads configuration from environment variables.
// It attempts to load a .env file if present but prioritizes
// actual environment variables set in the system (e.g., by Docker).
func LoadConfig() (*Config, error) {
	// Load .env file if it exists (useful for development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	debug, _ := strconv.ParseBool(getEnv("DEBUG", "false"))

	rankLimit, err := strconv.Atoi(getEnv("RANK_LIMIT", "10"))
	if err != nil || rankLimit < 1 {
		return nil, fmt.Errorf("invalid RANK_LIMIT: %q", getEnv("RANK_LIMIT", "10"))
	}

	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Debug:           debug,
		Version:         getEnv("VERSION", "dev"),
		BotToken:        getEnv("TELEGRAM_BOT_TOKEN", ""),
		SentryDSN:       getEnv("SENTRY_DSN", ""),
		MongoDBURI:      getEnv("MONGODB_URI", ""),
		MongoDBDatabase: getEnv("MONGODB_DATABASE", "checkin"),
		DataFile:        getEnv("DATA_FILE", "data/checkin.json"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		RewardPolicy:    getEnv("REWARD_POLICY", RewardPolicyStreak),
		RankLimit:       rankLimit,
	}

	// Basic validation for essential variables
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	if cfg.RewardPolicy != RewardPolicyStreak && cfg.RewardPolicy != RewardPolicyRandom {
		return nil, fmt.Errorf("invalid REWARD_POLICY: %q", cfg.RewardPolicy)
	}
	if cfg.SentryDSN == "" {
		log.Println("Warning: SENTRY_DSN is not set. Error tracking disabled.")
	}
	if cfg.MongoDBURI == "" {
		log.Printf("Warning: MONGODB_URI is not set. Falling back to file store at %s", cfg.DataFile)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
