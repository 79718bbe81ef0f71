package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file, typically the
// backend credentials and region. ENV_PATH overrides the default location.
// A missing file is not an error; the environment may already be set.
func LoadDotEnv(defaultPath string) {
	envPath := defaultPath
	if p := os.Getenv("ENV_PATH"); p != "" {
		envPath = p
	}

	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("skipping .env", "path", envPath, "error", err)
	}
}
