package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "sqlite", cfg.Storage.Type)
	assert.Equal(t, "€", cfg.Display.CurrencySymbol)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			"sqlite needs db_path",
			Config{Storage: StorageConfig{Type: "sqlite"}, Display: DisplayConfig{CurrencySymbol: "€"}},
			"db_path",
		},
		{
			"file needs dir",
			Config{Storage: StorageConfig{Type: "file"}, Display: DisplayConfig{CurrencySymbol: "€"}},
			"dir",
		},
		{
			"unknown type",
			Config{Storage: StorageConfig{Type: "redis"}, Display: DisplayConfig{CurrencySymbol: "€"}},
			"storage.type",
		},
		{
			"missing symbol",
			Config{Storage: StorageConfig{Type: "sqlite", DBPath: "x.db"}},
			"currency_symbol",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadFromYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
storage:
  type: file
  dir: /tmp/journal
display:
  currency_symbol: "$"
`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "file", cfg.Storage.Type)
	assert.Equal(t, "/tmp/journal", cfg.Storage.Dir)
	assert.Equal(t, "$", cfg.Display.CurrencySymbol)
}

func TestLoadFromJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"storage":{"type":"sqlite","db_path":"j.db"},"display":{"currency_symbol":"€"}}`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Type)
	assert.Equal(t, "j.db", cfg.Storage.DBPath)
}

func TestLoadInvalidConfigFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("storage:\n  type: nope\n"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"config.yaml", "config.json"} {
		path := filepath.Join(dir, name)

		want := &Config{
			Storage: StorageConfig{Type: "file", Dir: "/data/journal"},
			Display: DisplayConfig{CurrencySymbol: "$"},
		}
		assert.NoError(t, want.SaveToFile(path))

		got, err := LoadFromFile(path)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
