// Package branding names the product: the root command, the display name
// used in help text, and the home directory and environment prefix the
// config package derives its paths and variables from. The values are read
// once from the embedded branding.yaml.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var raw []byte

// Identity is the decoded branding.yaml.
type Identity struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
}

// fallback applies when branding.yaml is empty or leaves a key out.
var fallback = Identity{
	CLIName:     "yuigen",
	DisplayName: "YUIGen",
	Description: "Scaffolding generator for YUI component libraries",
	HomeDir:     ".yuigen",
	EnvPrefix:   "YUIGEN",
}

var current = sync.OnceValue(func() Identity {
	id := fallback
	if err := yaml.Unmarshal(raw, &id); err != nil {
		return fallback
	}
	return id
})

// Get returns the embedded identity.
func Get() Identity { return current() }

func CLIName() string     { return current().CLIName }
func DisplayName() string { return current().DisplayName }
func Description() string { return current().Description }

// HomeDir is the dot-directory under $HOME that holds config.yaml.
func HomeDir() string { return current().HomeDir }

func EnvPrefix() string { return current().EnvPrefix }

// EnvVar qualifies suffix with the env prefix: EnvVar("home") is "YUIGEN_HOME".
func EnvVar(suffix string) string {
	return current().EnvPrefix + "_" + strings.ToUpper(suffix)
}
