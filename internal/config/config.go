// Package config holds hearth's on-disk configuration, the assumption
// override layer, and scenario file loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"hearth/internal/finance"
)

// Config holds all hearth configuration.
type Config struct {
	General     GeneralConfig       `toml:"general"`
	Appearance  AppearanceConfig    `toml:"appearance"`
	Assumptions AssumptionOverrides `toml:"assumptions"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	ScenarioPath string `toml:"scenario_path,omitempty"`
	DefaultMode  string `toml:"default_mode"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// AssumptionOverrides lets users replace individual policy constants from
// the config file; nil fields keep the registry default. This is the only
// override point, so every call site sees the same numbers.
type AssumptionOverrides struct {
	PropertyTaxRate    *float64 `toml:"property_tax_rate,omitempty"`
	AnnualInsurance    *float64 `toml:"annual_insurance,omitempty"`
	PMIAnnualRate      *float64 `toml:"pmi_annual_rate,omitempty"`
	PMIThresholdPct    *float64 `toml:"pmi_threshold_pct,omitempty"`
	DTICapPercent      *float64 `toml:"dti_cap_percent,omitempty"`
	HousingRatioPct    *float64 `toml:"housing_ratio_pct,omitempty"`
	TakeHomePercent    *float64 `toml:"take_home_percent,omitempty"`
	ExcessTolerancePct *float64 `toml:"excess_tolerance_pct,omitempty"`
}

// Resolve layers the overrides onto the registry defaults.
func (o AssumptionOverrides) Resolve() finance.Assumptions {
	a := finance.DefaultAssumptions()
	set := func(dst, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&a.PropertyTaxRate, o.PropertyTaxRate)
	set(&a.AnnualInsurance, o.AnnualInsurance)
	set(&a.PMIAnnualRate, o.PMIAnnualRate)
	set(&a.PMIThresholdPct, o.PMIThresholdPct)
	set(&a.DTICapPercent, o.DTICapPercent)
	set(&a.HousingRatioPct, o.HousingRatioPct)
	set(&a.TakeHomePercent, o.TakeHomePercent)
	set(&a.ExcessTolerancePct, o.ExcessTolerancePct)
	return a
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultMode: "clarify",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hearth")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hearth")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
