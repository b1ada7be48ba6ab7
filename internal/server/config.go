package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mpavlovic/retrieval-eval/pkg/config/env"
)

type Config struct {
	Port        string
	CorsOrigins []string
}

// LoadConfig reads the server configuration from the environment,
// loading a .env file first when one is present.
func LoadConfig() (*Config, error) {
	_ = env.LoadDotEnv(os.Getenv("APP_ENV"), ".env")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	var origins []string
	for _, origin := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{Port: port, CorsOrigins: origins}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}
	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}
