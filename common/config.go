package common

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the server reads from the environment. It is
// built once in main and handed to the modules that need it, so nothing
// else in the codebase touches os.Getenv at request time.
type Config struct {
	Port           string
	DBFile         string
	SecretKey      string
	TokenTTL       time.Duration
	AllowedOrigins []string

	ReceiverEmail string

	FirstAdminUsername string
	FirstAdminPassword string
}

// LoadConfig reads the .env file if present and assembles the server
// configuration. A missing SECRET_KEY is a startup failure.
func LoadConfig() (*Config, error) {
	godotenv.Load()

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return nil, errors.New("SECRET_KEY environment variable is not set")
	}

	dbFile := os.Getenv("sqlite_db")
	if dbFile == "" {
		return nil, errors.New("sqlite_db environment variable is not set")
	}

	ttlMinutes := 30
	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be a positive integer")
		}
		ttlMinutes = parsed
	}

	origins := os.Getenv("FRONTEND_URLS")
	if origins == "" {
		origins = "http://localhost:3000"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Port:               port,
		DBFile:             dbFile,
		SecretKey:          secret,
		TokenTTL:           time.Duration(ttlMinutes) * time.Minute,
		AllowedOrigins:     strings.Split(origins, ","),
		ReceiverEmail:      os.Getenv("RECEIVER_EMAIL"),
		FirstAdminUsername: os.Getenv("FIRST_ADMIN_USERNAME"),
		FirstAdminPassword: os.Getenv("FIRST_ADMIN_PASSWORD"),
	}, nil
}
