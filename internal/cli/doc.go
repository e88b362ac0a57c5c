// Package cli defines the Cobra command tree for the yuigen CLI. Each file
// builds one top-level command (module, project, files, config, version).
// Commands only parse flags, ask questions and print results; generation
// lives in the scaffold package.
package cli
