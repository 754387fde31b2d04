package config

import (
	"fmt"
	"strconv"

	"greeter/src/internal/domain"
)

const PortEnv = "PORT"

// Load builds the service config from getenv, normally os.Getenv.
// An unset PORT falls back to domain.DefaultPort.
func Load(getenv func(string) string) (domain.Config, error) {
	cfg := domain.Config{
		Host: domain.DefaultHost,
		Port: getenv(PortEnv),
	}
	if cfg.Port == "" {
		cfg.Port = domain.DefaultPort
	}

	// Port 0 is allowed, the kernel picks one.
	n, err := strconv.ParseUint(cfg.Port, 10, 16)
	if err != nil {
		return domain.Config{}, fmt.Errorf("%w: %s=%q must be a number in 0-65535", domain.ErrInvalidPort, PortEnv, cfg.Port)
	}
	cfg.Port = strconv.FormatUint(n, 10)
	return cfg, nil
}
