package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestVaultConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := &VaultConfig{
		Created:    "2025-01-15T09:30:00Z",
		Version:    "0.1.0",
		AutoCommit: true,
	}
	if err := SaveVaultConfig(dir, cfg); err != nil {
		t.Fatalf("SaveVaultConfig: %v", err)
	}

	loaded, err := LoadVaultConfig(dir)
	if err != nil {
		t.Fatalf("LoadVaultConfig: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}

func TestLoadVaultConfigMissing(t *testing.T) {
	cfg, err := LoadVaultConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadVaultConfig: %v", err)
	}
	if *cfg != (VaultConfig{}) {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestFindVaultRoot(t *testing.T) {
	root := t.TempDir()
	if err := SaveVaultConfig(root, NewVaultConfig("0.1.0")); err != nil {
		t.Fatal(err)
	}

	nested := filepath.Join(root, "daily", "deep")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got := FindVaultRoot(nested)
	// TempDir may sit behind a symlink on some platforms; compare resolved paths.
	wantResolved, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("FindVaultRoot = %q, want %q", got, root)
	}
}

func TestFindVaultRootNotInVault(t *testing.T) {
	if got := FindVaultRoot(t.TempDir()); got != "" {
		t.Errorf("expected empty root outside a vault, got %q", got)
	}
}
