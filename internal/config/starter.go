package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteStarter writes a commented starter config to path. It refuses to
// overwrite an existing file.
func WriteStarter(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	starter := map[string]any{
		"server": map[string]any{
			"host":            "0.0.0.0",
			"port":            8080,
			"allowed_origins": []string{"http://localhost:3000"},
		},
		"database": map[string]any{
			"url": "",
		},
		"auth": map[string]any{
			"jwt_secret": "change-me",
			"issuer":     "saathi",
			"access_ttl": "24h",
		},
		"history": map[string]any{
			"limit":      20,
			"cache_size": 256,
		},
		"log": map[string]any{
			"level": "info",
			"file":  "",
		},
		"observability": map[string]any{
			"metrics_enabled": true,
			"traces_enabled":  false,
			"otlp_endpoint":   "",
		},
	}

	data, err := yaml.Marshal(starter)
	if err != nil {
		return fmt.Errorf("encode starter config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
