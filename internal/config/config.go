package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"
	"github.com/yuilib/yuigen/internal/branding"
	"go.yaml.in/yaml/v3"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyAuthor     = "author"
	KeyGitHubUser = "github_user"
	KeyLicense    = "license"
	KeyYUIVersion = "yui_version"
	KeyModuleType = "module_type"
)

// Keys lists every key accepted by Set, in display order.
var Keys = []string{KeyAuthor, KeyGitHubUser, KeyLicense, KeyYUIVersion, KeyModuleType}

// Defaults holds the user-level values used to pre-fill generator prompts.
type Defaults struct {
	Author     string
	GitHubUser string
	License    string
	YUIVersion string
	ModuleType string
}

// Dir returns the path to the config directory (~/.yuigen/).
// YUIGEN_HOME overrides the location.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.yuigen/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.Reset()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyLicense, "BSD-3-Clause")
	viper.SetDefault(KeyYUIVersion, "3.18.1")
	viper.SetDefault(KeyModuleType, "js")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// All returns every recognized key with its effective value.
func All() map[string]string {
	out := make(map[string]string, len(Keys))
	for _, k := range Keys {
		out[k] = viper.GetString(k)
	}
	return out
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Current returns the effective defaults after Load.
func Current() Defaults {
	return Defaults{
		Author:     viper.GetString(KeyAuthor),
		GitHubUser: viper.GetString(KeyGitHubUser),
		License:    viper.GetString(KeyLicense),
		YUIVersion: viper.GetString(KeyYUIVersion),
		ModuleType: viper.GetString(KeyModuleType),
	}
}

// Set stores key=value in the config file, keeping the keys already in it.
// Defaults and environment overrides are never written back.
func Set(key, value string) error {
	if !isKnown(key) {
		return fmt.Errorf("unknown config key %q; valid keys: %v", key, Keys)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	path := FilePath()
	stored := map[string]string{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &stored); err != nil {
			return fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if stored == nil {
		stored = map[string]string{}
	}
	stored[key] = value

	out, err := yaml.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}

	viper.Set(key, value)
	return nil
}

func isKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}
