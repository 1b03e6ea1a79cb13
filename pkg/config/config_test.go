package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
max_word_len = 20

[dict]
path = "/usr/share/dict/words"
encoding = "latin1"
cache_size = 10

[cli]
show_frequency = false
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.MaxWordLen != 20 {
		t.Errorf("MaxWordLen = %d", cfg.Server.MaxWordLen)
	}
	if cfg.Server.MinWordLen != 1 {
		t.Errorf("unset MinWordLen should keep default, got %d", cfg.Server.MinWordLen)
	}
	if cfg.Dict.Path != "/usr/share/dict/words" || cfg.Dict.CacheSize != 10 {
		t.Errorf("unexpected dict config: %+v", cfg.Dict)
	}
	if cfg.DictEncoding().String() != "latin1" {
		t.Errorf("encoding = %s", cfg.DictEncoding())
	}
	if cfg.CLI.ShowFrequency {
		t.Error("ShowFrequency should be false")
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// max_word_len has the wrong type; the rest must still apply
	path := writeConfig(t, `
[server]
max_word_len = "long"
min_word_len = 2

[dict]
cache_size = 7
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.MaxWordLen != DefaultConfig().Server.MaxWordLen {
		t.Errorf("bad value should fall back to default, got %d", cfg.Server.MaxWordLen)
	}
	if cfg.Server.MinWordLen != 2 {
		t.Errorf("MinWordLen = %d, want 2", cfg.Server.MinWordLen)
	}
	if cfg.Dict.CacheSize != 7 {
		t.Errorf("CacheSize = %d, want 7", cfg.Dict.CacheSize)
	}
}

func TestLoadConfigBrokenSyntax(t *testing.T) {
	path := writeConfig(t, "[server\nmax_word_len = ")
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for unparseable file")
	}

	cfg := InitConfig(path)
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.MinWordLen = 10
	cfg.Server.MaxWordLen = 5
	cfg.Dict.Encoding = "klingon"
	cfg.Dict.CacheSize = -3
	cfg.Validate()

	def := DefaultConfig()
	if cfg.Server.MaxWordLen != def.Server.MaxWordLen {
		t.Errorf("MaxWordLen = %d", cfg.Server.MaxWordLen)
	}
	if cfg.Dict.Encoding != def.Dict.Encoding {
		t.Errorf("Encoding = %q", cfg.Dict.Encoding)
	}
	if cfg.Dict.CacheSize != 0 {
		t.Errorf("CacheSize = %d", cfg.Dict.CacheSize)
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := InitConfig(path)
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if *reloaded != *cfg {
		t.Errorf("saved config differs: %+v vs %+v", reloaded, cfg)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WORDFIX_DICT", "/tmp/other.txt")
	t.Setenv("WORDFIX_CACHE_SIZE", "5")

	path := writeConfig(t, "[dict]\npath = \"words.txt\"\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dict.Path != "/tmp/other.txt" || cfg.Dict.CacheSize != 5 {
		t.Errorf("env overrides not applied: %+v", cfg.Dict)
	}
}

func TestLoadConfigWithPriority(t *testing.T) {
	custom := writeConfig(t, "[server]\nmax_word_len = 12\n")
	fallback := filepath.Join(t.TempDir(), "config.toml")

	cfg, used := LoadConfigWithPriority(custom, fallback)
	if used != custom || cfg.Server.MaxWordLen != 12 {
		t.Errorf("custom config not used: %s %+v", used, cfg.Server)
	}

	cfg, used = LoadConfigWithPriority(filepath.Join(t.TempDir(), "missing.toml"), fallback)
	if used != fallback || *cfg != *DefaultConfig() {
		t.Errorf("fallback not used: %s %+v", used, cfg)
	}
}

func TestDictPaths(t *testing.T) {
	testCases := []struct {
		path string
		want []string
	}{
		{"words.txt", []string{"words.txt"}},
		{"a.txt, b.txt", []string{"a.txt", "b.txt"}},
		{" a.txt,,b.txt, ", []string{"a.txt", "b.txt"}},
		{"", nil},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Dict.Path = tc.path
			if got := cfg.DictPaths(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("DictPaths() = %q, want %q", got, tc.want)
			}
		})
	}
}
