// Package config loads the on-disk tunables for a Hammer/Parser
// configuration: typo-repair levels, known-city/street file paths, and
// compiled-table cache sizes, per SPEC_FULL.md's ambient-stack section.
// Layered the way the teacher's app/config/config.go does: a YAML file
// unmarshaled with gopkg.in/yaml.v3, then environment-variable overrides
// applied on top via viper.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable a Parser/Hammer construction needs besides the
// address data itself.
type Config struct {
	KnownCitiesFile  string `yaml:"known_cities_file"`
	KnownStreetsFile string `yaml:"known_streets_file"`
	JunkCitiesFile   string `yaml:"junk_cities_file"`
	JunkStreetsFile  string `yaml:"junk_streets_file"`

	CityRepairLevel   int `yaml:"city_repair_level"`
	StreetRepairLevel int `yaml:"street_repair_level"`

	TableCacheSize int `yaml:"table_cache_size"`

	Environment string `yaml:"environment"`
}

// Default returns the configuration a fresh install runs with if no file and
// no environment overrides are supplied.
func Default() Config {
	return Config{
		CityRepairLevel:   5,
		StreetRepairLevel: 5,
		TableCacheSize:    64,
		Environment:       "production",
	}
}

// Load reads path as YAML into a Config seeded with Default(), then applies
// ADDRESSHAMMER_*-prefixed environment variable overrides via viper — e.g.
// ADDRESSHAMMER_CITY_REPAIR_LEVEL=8 overrides CityRepairLevel regardless of
// what the file says. path may be "", in which case only env overrides (and
// the defaults) apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("ADDRESSHAMMER")
	v.AutomaticEnv()

	for _, key := range []string{
		"city_repair_level", "street_repair_level", "table_cache_size",
		"known_cities_file", "known_streets_file",
		"junk_cities_file", "junk_streets_file", "environment",
	} {
		if !v.IsSet(key) {
			continue
		}
		switch key {
		case "city_repair_level":
			cfg.CityRepairLevel = v.GetInt(key)
		case "street_repair_level":
			cfg.StreetRepairLevel = v.GetInt(key)
		case "table_cache_size":
			cfg.TableCacheSize = v.GetInt(key)
		case "known_cities_file":
			cfg.KnownCitiesFile = v.GetString(key)
		case "known_streets_file":
			cfg.KnownStreetsFile = v.GetString(key)
		case "junk_cities_file":
			cfg.JunkCitiesFile = v.GetString(key)
		case "junk_streets_file":
			cfg.JunkStreetsFile = v.GetString(key)
		case "environment":
			cfg.Environment = v.GetString(key)
		}
	}

	if cfg.CityRepairLevel < 0 || cfg.CityRepairLevel > 10 {
		return Config{}, fmt.Errorf("config: city_repair_level must be 0-10, got %d", cfg.CityRepairLevel)
	}
	if cfg.StreetRepairLevel < 0 || cfg.StreetRepairLevel > 10 {
		return Config{}, fmt.Errorf("config: street_repair_level must be 0-10, got %d", cfg.StreetRepairLevel)
	}
	return cfg, nil
}
