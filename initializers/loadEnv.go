package initializers

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads the .env file once at startup. The signing secret is
// process-wide configuration; running without it would make every login
// fail at request time, so its absence is fatal here instead.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is not set")
	}
}
