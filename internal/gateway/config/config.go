package config

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	// GeminiAPIKey may be empty at startup; calls fail later instead.
	GeminiAPIKey string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		log.Printf("GEMINI_API_KEY is missing from the environment; model calls will fail until it is set")
	}

	return &Config{
		Port:         resolvePort(os.Getenv("PORT"), *port),
		Env:          env,
		GeminiAPIKey: apiKey,
	}, nil
}

// resolvePort lets PORT override the flag, with or without a leading
// colon.
func resolvePort(envPort, flagPort string) string {
	envPort = strings.TrimSpace(envPort)
	if envPort == "" {
		return flagPort
	}
	if strings.HasPrefix(envPort, ":") {
		return envPort
	}
	return ":" + envPort
}
