package las

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeConfig(t, "las.yaml", "legacy_zero_strings: true\nnull_value: -999.25\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if !cfg.LegacyZeroStrings {
		t.Error("LegacyZeroStrings not set")
	}
	if cfg.NullValue == nil || *cfg.NullValue != -999.25 {
		t.Errorf("NullValue = %v, want -999.25", cfg.NullValue)
	}
}

func TestLoadConfig_TOML(t *testing.T) {
	path := writeConfig(t, "las.toml", "strict_sections = true\nnull_value = -999.25\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if !cfg.StrictSections {
		t.Error("StrictSections not set")
	}
	if cfg.NullValue == nil || *cfg.NullValue != -999.25 {
		t.Errorf("NullValue = %v, want -999.25", cfg.NullValue)
	}
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeConfig(t, "las.json", `{"legacy_zero_strings": true}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if !cfg.LegacyZeroStrings {
		t.Error("LegacyZeroStrings not set")
	}
}

func TestLoadConfig_UnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "las.ini", "x = 1")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() should reject .ini")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("LoadConfig() should fail for missing file")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.LegacyZeroStrings || cfg.StrictSections || cfg.NullValue != nil {
		t.Errorf("DefaultConfig() = %+v, want zero value", cfg)
	}
}
