package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"hoadash/internal/branding"
)

// LoadBrandingConfig reads a YAML, JSON or TOML file of branding overrides
// and applies them on top of the defaults. An empty path yields the defaults.
func LoadBrandingConfig(path string) (branding.Config, error) {
	cfg := branding.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return branding.Config{}, fmt.Errorf("failed to read branding config: %w", err)
	}

	var o branding.Overrides
	if err := v.Unmarshal(&o); err != nil {
		return branding.Config{}, fmt.Errorf("failed to parse branding config: %w", err)
	}

	cfg = cfg.Apply(o)
	if err := cfg.Validate(); err != nil {
		return branding.Config{}, fmt.Errorf("invalid branding config %s: %w", path, err)
	}
	return cfg, nil
}
