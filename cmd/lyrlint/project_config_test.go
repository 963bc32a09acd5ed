package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFindLyrlintToml_UpwardSearch(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(root, "lyrlint.toml")
	if err := os.WriteFile(cfgPath, []byte("[lint]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, ok, err := findLyrlintToml(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("config must be found two levels up")
	}
	if found != cfgPath {
		t.Errorf("found = %q, want %q", found, cfgPath)
	}
}

func TestFindLyrlintToml_NotFound(t *testing.T) {
	_, ok, err := findLyrlintToml(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("empty tree must not report a config")
	}
}

func TestLoadProjectConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lyrlint.toml")
	src := `[lint]
disable = ["MX304", "mx801"]
acronyms = ["MTV", "BBC"]
paths = ["lyrics/"]
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadProjectConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg.Lint.Disable, []string{"MX304", "mx801"}) {
		t.Errorf("disable = %v", cfg.Lint.Disable)
	}
	if !reflect.DeepEqual(cfg.Lint.Acronyms, []string{"MTV", "BBC"}) {
		t.Errorf("acronyms = %v", cfg.Lint.Acronyms)
	}
	if !reflect.DeepEqual(cfg.Lint.Paths, []string{"lyrics/"}) {
		t.Errorf("paths = %v", cfg.Lint.Paths)
	}
}

func TestLoadProjectConfig_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lyrlint.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadProjectConfig(path); err == nil {
		t.Error("malformed TOML must be an error")
	}
}
