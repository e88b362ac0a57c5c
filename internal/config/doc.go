// Package config manages user-level defaults stored at ~/.yuigen/config.yaml.
// The values (author, license, preferred YUI version, default module type)
// pre-fill the generator prompts and can be overridden with YUIGEN_* env vars.
package config
