package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNoPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.CityRepairLevel)
	assert.Equal(t, 5, cfg.StreetRepairLevel)
}

func TestLoadReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("city_repair_level: 8\nknown_cities_file: cities.txt\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.CityRepairLevel)
	assert.Equal(t, "cities.txt", cfg.KnownCitiesFile)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("city_repair_level: 8\n"), 0o644))

	t.Setenv("ADDRESSHAMMER_CITY_REPAIR_LEVEL", "2")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.CityRepairLevel)
}

func TestLoadRejectsOutOfRangeLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("city_repair_level: 42\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
