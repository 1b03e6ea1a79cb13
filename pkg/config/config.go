/*
Package config manages TOML config for WordFix.

Values are resolved in this order: built-in defaults, the TOML file, then
WORDFIX_* environment variables. A file that fails to decode as a whole is
parsed section by section so that one bad value does not discard the rest.
*/
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bastiangx/wordfix/internal/utils"
	"github.com/bastiangx/wordfix/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig bounds accepted queries. The two-edit search grows with the
// square of the word length, so MaxWordLen is what keeps a single request cheap.
type ServerConfig struct {
	MinWordLen int `toml:"min_word_len"`
	MaxWordLen int `toml:"max_word_len"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path      string `toml:"path"`
	Encoding  string `toml:"encoding"`
	CacheSize int    `toml:"cache_size"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	ShowFrequency bool `toml:"show_frequency"`
	NoFilter      bool `toml:"no_filter"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MinWordLen: 1,
			MaxWordLen: 32,
		},
		Dict: DictConfig{
			Path:      "words.txt",
			Encoding:  "utf-8",
			CacheSize: 1024,
		},
		CLI: CliConfig{
			ShowFrequency: true,
			NoFilter:      false,
		},
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. defaultPath, created with defaults if missing
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath, defaultPath string) (*Config, string) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			cfg, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return cfg, customConfigPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	if defaultPath == "" {
		log.Warn("No default config path. Using built-in defaults...")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		return cfg, ""
	}

	cfg := InitConfig(defaultPath)
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return cfg, defaultPath
}

// InitConfig loads config from file or creates default if missing.
// It never fails; problems are logged and defaults are used instead.
func InitConfig(configPath string) *Config {
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		log.Warnf("Failed to create config directory for %s: %v. Using built-in defaults...", configPath, err)
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		return cfg
	}

	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
		} else {
			log.Debugf("Created default config file at: %s", configPath)
		}
		cfg.applyEnvOverrides()
		return cfg
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		cfg = DefaultConfig()
		cfg.applyEnvOverrides()
	}
	return cfg
}

// LoadConfig loads from a TOML file, then applies env overrides and validation.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		cfg, err = tryPartialParse(configPath)
		if err != nil {
			return nil, err
		}
	}
	cfg.applyEnvOverrides()
	cfg.Validate()
	return cfg, nil
}

// tryPartialParse recovers whatever sections decode with the right types.
func tryPartialParse(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		return nil, err
	}

	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &cfg.Server)
	}
	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &cfg.Dict)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &cfg.CLI)
	}
	return cfg, nil
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt(data, "min_word_len"); ok {
		server.MinWordLen = val
	}
	if val, ok := utils.ExtractInt(data, "max_word_len"); ok {
		server.MaxWordLen = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractString(data, "encoding"); ok {
		dict.Encoding = val
	}
	if val, ok := utils.ExtractInt(data, "cache_size"); ok {
		dict.CacheSize = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractBool(data, "show_frequency"); ok {
		cli.ShowFrequency = val
	}
	if val, ok := utils.ExtractBool(data, "no_filter"); ok {
		cli.NoFilter = val
	}
}

func (c *Config) applyEnvOverrides() {
	if env := os.Getenv("WORDFIX_DICT"); env != "" {
		c.Dict.Path = env
	}
	if env := os.Getenv("WORDFIX_ENCODING"); env != "" {
		c.Dict.Encoding = env
	}
	if env := os.Getenv("WORDFIX_CACHE_SIZE"); env != "" {
		if n, err := strconv.Atoi(env); err == nil {
			c.Dict.CacheSize = n
		} else {
			log.Warnf("Ignoring WORDFIX_CACHE_SIZE=%q: %v", env, err)
		}
	}
}

// Validate resets out-of-range values to their defaults.
func (c *Config) Validate() {
	def := DefaultConfig()

	if c.Server.MinWordLen < 0 {
		log.Warnf("min_word_len %d is negative, using %d", c.Server.MinWordLen, def.Server.MinWordLen)
		c.Server.MinWordLen = def.Server.MinWordLen
	}
	if c.Server.MaxWordLen < 0 || (c.Server.MaxWordLen > 0 && c.Server.MaxWordLen < c.Server.MinWordLen) {
		log.Warnf("max_word_len %d is invalid, using %d", c.Server.MaxWordLen, def.Server.MaxWordLen)
		c.Server.MaxWordLen = def.Server.MaxWordLen
	}
	if _, err := dictionary.ParseEncoding(c.Dict.Encoding); err != nil {
		log.Warnf("%v, using %s", err, def.Dict.Encoding)
		c.Dict.Encoding = def.Dict.Encoding
	}
	if c.Dict.CacheSize < 0 {
		c.Dict.CacheSize = 0
	}
}

// DictEncoding returns the parsed dictionary encoding.
func (c *Config) DictEncoding() dictionary.Encoding {
	enc, _ := dictionary.ParseEncoding(c.Dict.Encoding)
	return enc
}

// SplitPaths splits a comma separated dictionary list, dropping empty entries.
func SplitPaths(list string) []string {
	var paths []string
	for _, p := range strings.Split(list, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// DictPaths returns the configured dictionary files.
func (c *Config) DictPaths() []string {
	return SplitPaths(c.Dict.Path)
}

// SaveConfig saves into a TOML file
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	return utils.GetAbsolutePath(configPath)
}
