package scaffold

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

var (
	moduleNamePattern  = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	projectNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)
	githubUserPattern  = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9]|-[A-Za-z0-9]){0,38}$`)
)

// ValidateModuleName checks that name is usable as a YUI module name and as
// a path segment.
func ValidateModuleName(name string) error {
	if name == "" {
		return fmt.Errorf("module name cannot be empty")
	}
	if !moduleNamePattern.MatchString(name) {
		return fmt.Errorf("invalid module name %q: must match pattern [a-z][a-z0-9-]*", name)
	}
	return nil
}

// ValidateProjectName checks that name is a valid npm/bower package name.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if len(name) > 214 {
		return fmt.Errorf("invalid project name %q: longer than 214 characters", name)
	}
	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match pattern [a-z0-9][a-z0-9._-]*", name)
	}
	return nil
}

// ValidateGitHubUser checks that user is a GitHub account name, since it is
// spliced into repository and homepage URLs.
func ValidateGitHubUser(user string) error {
	if !githubUserPattern.MatchString(user) || len(user) > 39 {
		return fmt.Errorf("invalid GitHub user %q: letters, digits and single hyphens, at most 39 characters", user)
	}
	return nil
}

// ValidateVersion checks that v is a strict semantic version (no "v" prefix).
func ValidateVersion(v string) error {
	if _, err := semver.StrictNewVersion(v); err != nil {
		return fmt.Errorf("%q is not a semantic version: %w", v, err)
	}
	return nil
}
