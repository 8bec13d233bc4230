package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Kamegrueon/household-task-manager/internal/cli"
)

func main() {
	// Outside production the local env file supplies API_URL and friends;
	// a missing file is fine.
	if os.Getenv("ENVIRONMENT") != "production" {
		_ = godotenv.Load(".env.development")
	}

	os.Exit(cli.Run())
}
