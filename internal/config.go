package internal

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Host            string        `env:"HOST,required=true"`
	Port            int           `env:"PORT,required=true"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,required=true"`
	AllowedOrigins  string        `env:"ALLOWED_ORIGINS,required=true"`
	StoreTimeout    time.Duration `env:"STORE_TIMEOUT,required=true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,required=true"`
	CommitRetries   int           `env:"COMMIT_RETRIES,required=true"`
}

// Origins splits ALLOWED_ORIGINS into individual browser origins.
func Origins(str string) ([]string, error) {
	var origins []string
	for _, part := range strings.Split(str, ",") {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		origins = append(origins, origin)
	}
	if len(origins) == 0 {
		return nil, fmt.Errorf("ALLOWED_ORIGINS must contain at least one origin, got %q", str)
	}
	return origins, nil
}
