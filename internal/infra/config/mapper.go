package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/recordsort/internal/domain"
)

// MapConfig applies y on top of domain.DefaultConfig and validates the result.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if s := strings.TrimSpace(y.Server.Addr); s != "" {
		cfg.Server.Addr = s
	}
	if s := strings.TrimSpace(y.Server.CORSOrigins); s != "" {
		cfg.Server.CORSOrigins = s
	}

	if s := strings.TrimSpace(y.Storage.Driver); s != "" {
		driver, err := parseDriver(s)
		if err != nil {
			return cfg, invalidField(path, "storage.driver", err.Error())
		}
		cfg.Storage.Driver = driver
	}
	if s := strings.TrimSpace(y.Storage.Path); s != "" {
		cfg.Storage.Path = s
	}

	if y.Log.Debug != nil {
		cfg.Log.Debug = *y.Log.Debug
	}
	if y.Log.Stderr != nil {
		cfg.Log.Stderr = *y.Log.Stderr
	}
	if s := strings.TrimSpace(y.Log.Dir); s != "" {
		cfg.Log.Dir = s
	}

	if y.Metrics.Enabled != nil {
		cfg.Metrics.Enabled = *y.Metrics.Enabled
	}

	return cfg, nil
}

func parseDriver(s string) (domain.StorageDriver, error) {
	switch d := domain.StorageDriver(strings.ToLower(s)); d {
	case domain.StorageMemory, domain.StorageFile:
		return d, nil
	}
	return "", fmt.Errorf("unsupported driver %q (expected memory|file)", s)
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
