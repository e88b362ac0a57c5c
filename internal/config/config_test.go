package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirHonorsHomeOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("YUIGEN_HOME", dir)

	if got := Dir(); got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("YUIGEN_HOME", t.TempDir())
	Load()

	d := Current()
	if d.License != "BSD-3-Clause" {
		t.Errorf("License = %q, want BSD-3-Clause", d.License)
	}
	if d.YUIVersion != "3.18.1" {
		t.Errorf("YUIVersion = %q, want 3.18.1", d.YUIVersion)
	}
	if d.ModuleType != "js" {
		t.Errorf("ModuleType = %q, want js", d.ModuleType)
	}
	if d.Author != "" {
		t.Errorf("Author = %q, want empty", d.Author)
	}
}

func TestSetPersistsAndReloads(t *testing.T) {
	t.Setenv("YUIGEN_HOME", t.TempDir())
	Load()

	if err := Set(KeyAuthor, "Jane Doe"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if _, err := os.Stat(FilePath()); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	Load()
	if got := Get(KeyAuthor); got != "Jane Doe" {
		t.Errorf("Get(author) = %q, want %q", got, "Jane Doe")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("YUIGEN_HOME", t.TempDir())
	Load()
	if err := Set(KeyModuleType, "css"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	t.Setenv("YUIGEN_MODULE_TYPE", "widget")
	Load()
	if got := Current().ModuleType; got != "widget" {
		t.Errorf("ModuleType = %q, want widget", got)
	}
}

func TestSetKeepsOtherKeys(t *testing.T) {
	t.Setenv("YUIGEN_HOME", t.TempDir())
	Load()
	if err := Set(KeyAuthor, "Jane Doe"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := Set(KeyGitHubUser, "jdoe"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatal(err)
	}
	want := "author: Jane Doe\ngithub_user: jdoe\n"
	if string(data) != want {
		t.Errorf("config file = %q, want %q", data, want)
	}
}

func TestSetUnknownKey(t *testing.T) {
	t.Setenv("YUIGEN_HOME", t.TempDir())
	Load()
	if err := Set("colour", "blue"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestAllListsEveryKey(t *testing.T) {
	t.Setenv("YUIGEN_HOME", t.TempDir())
	Load()
	all := All()
	if len(all) != len(Keys) {
		t.Fatalf("All() has %d keys, want %d", len(all), len(Keys))
	}
	keys := SortedKeys(all)
	if keys[0] != KeyAuthor {
		t.Errorf("first sorted key = %q, want %q", keys[0], KeyAuthor)
	}
}
