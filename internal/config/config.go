// Package config resolves runtime settings from the environment, with an
// optional .env file for local setups.
package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Config holds everything the tools read from the environment.
type Config struct {
	// DataDir is where locally persisted files live.
	DataDir string
	// BrokersFile is the path of the broker registry file.
	BrokersFile string
	// DefaultTaxRate is the tax-rate percent used when none is given.
	DefaultTaxRate string
	// DefaultRebate is the rebate percent used when none is given.
	DefaultRebate string
}

// Load reads settings from the environment, trying a .env file first.
// Variables already set in the environment win over the file; built-in
// defaults fill whatever remains. The tax and rebate defaults match what
// the calculator pre-fills.
func Load() Config {
	loadEnvFile(".env")

	dataDir := getEnvOrDefault("ESTATEHUB_DATA_DIR", "data")
	return Config{
		DataDir:        dataDir,
		BrokersFile:    getEnvOrDefault("ESTATEHUB_BROKERS_FILE", filepath.Join(dataDir, "brokers.json")),
		DefaultTaxRate: getEnvOrDefault("ESTATEHUB_TAX_RATE", "12"),
		DefaultRebate:  getEnvOrDefault("ESTATEHUB_REBATE", "0"),
	}
}

// loadEnvFile reads environment variables from a .env file
func loadEnvFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err // File doesn't exist, which is okay
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue // Skip empty lines and comments
		}

		// Parse key=value format
		if idx := strings.Index(line, "="); idx > 0 {
			key := strings.TrimSpace(line[:idx])
			value := strings.TrimSpace(line[idx+1:])

			// Remove quotes if present
			if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"') {
				value = value[1 : len(value)-1]
			}

			// Only set if not already set in environment
			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	}

	return scanner.Err()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
