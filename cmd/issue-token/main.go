// Command issue-token signs a development JWT for the auth middleware.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"crop-procurement-api/config"
	"crop-procurement-api/middleware"
	"crop-procurement-api/models"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var (
		userID   string
		userType string
		ttl      time.Duration
	)
	flag.StringVar(&userID, "user", "", "user id to embed in the token (required)")
	flag.StringVar(&userType, "type", models.UserTypeFarmer, "user type: farmer or officer")
	flag.DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if userID == "" {
		log.Fatal("-user is required")
	}
	if !models.IsKnownUserType(userType) {
		log.Fatalf("unknown user type %q", userType)
	}

	cfg := config.Load()
	token, err := middleware.IssueToken(cfg.JWTSecret, userID, userType, ttl)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Fprintln(os.Stdout, token)
}
