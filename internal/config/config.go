package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the application configuration structure
type Config struct {
	// APIBaseURL is the base URL every gateway request is issued against
	APIBaseURL string `split_words:"true" default:"http://localhost:8080/api"`

	// SessionFile is the path of the durable session file.
	// An empty value resolves to '.gmconsole/session.json' inside the user's home directory.
	SessionFile string `split_words:"true"`

	// MockAPIListenAddress is the listen address of the development stub API server
	MockAPIListenAddress string `envconfig:"mock_api_listen_address" default:":8080"`

	// MockAPIAllowedOrigin is the origin the stub API server allows cross-origin requests from
	MockAPIAllowedOrigin string `envconfig:"mock_api_allowed_origin" default:"*"`

	// MockAPISessionTTL is the lifetime of login sessions issued by the stub API server
	MockAPISessionTTL time.Duration `envconfig:"mock_api_session_ttl" default:"12h"`

	// MockAPISeed defines whether the stub API server starts with the demo campaign loaded
	MockAPISeed bool `envconfig:"mock_api_seed" default:"true"`
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("gm", config); err != nil {
		return nil, err
	}

	if config.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		config.SessionFile = filepath.Join(home, ".gmconsole", "session.json")
	}
	return config, nil
}
