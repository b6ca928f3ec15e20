package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	APIBaseURL    string
	SessionFile   string
	SessionSecret string
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, using defaults")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	apiBaseURL := os.Getenv("API_BASE_URL")
	if apiBaseURL == "" {
		apiBaseURL = "http://localhost:5001/api"
	}

	sessionFile := os.Getenv("SESSION_FILE")
	if sessionFile == "" {
		sessionFile = ".session"
	}

	return Config{
		Port:          port,
		APIBaseURL:    apiBaseURL,
		SessionFile:   sessionFile,
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}
}
