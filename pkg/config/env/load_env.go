package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file, preferring
// the path given in ENV_PATH over defaultPath. A missing file is only
// an error in local mode; deployed environments configure through real
// environment variables.
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		if env == "local" || env == "" {
			slog.Error("Failed to load environment variables in local mode", "error", err, "path", envPath)
			return err
		}
		slog.Debug("Skipping .env ...", "path", envPath)
	}

	return nil
}
