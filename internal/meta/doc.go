// Package meta validates the JSON metadata files a generated module carries
// (meta/<name>.json and docs/component.json) against embedded JSON Schemas,
// and converts the config literal of an imported YUI.add() call into module
// metadata.
package meta
