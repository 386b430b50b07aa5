package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "leasedesk")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestConfigLoad(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	writeConfig(t, tmp, "port: 9090\ndev: true\n")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Port)
	}
	if !cfg.Dev {
		t.Error("expected dev mode")
	}
}

func TestConfigLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if cfg.Port != 0 || cfg.Dev {
		t.Error("expected zero-value config for missing file")
	}
}

func TestConfigLoadInvalid(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	writeConfig(t, tmp, "port: [not a number\n")

	if _, err := loadConfig(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestResolveConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	t.Setenv("LEASEDESK_PORT", "")
	t.Setenv("LEASEDESK_DEV", "")

	cfg, err := resolveConfig()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Port != defaultPort {
		t.Errorf("port = %d, want %d", cfg.Port, defaultPort)
	}
}

func TestResolveConfigEnvOverridesFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	chdir(t, t.TempDir())
	writeConfig(t, tmp, "port: 9090\n")
	t.Setenv("LEASEDESK_PORT", "7070")
	t.Setenv("LEASEDESK_DEV", "true")

	cfg, err := resolveConfig()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Port != 7070 {
		t.Errorf("port = %d, want 7070", cfg.Port)
	}
	if !cfg.Dev {
		t.Error("expected dev mode from env")
	}
}

func TestResolveConfigDotEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("LEASEDESK_PORT", "")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LEASEDESK_PORT=6060\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// godotenv does not override variables that are already set, even empty ones.
	os.Unsetenv("LEASEDESK_PORT")
	t.Cleanup(func() { os.Unsetenv("LEASEDESK_PORT") })

	cfg, err := resolveConfig()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Port != 6060 {
		t.Errorf("port = %d, want 6060", cfg.Port)
	}
}

func TestResolveConfigInvalidPort(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	t.Setenv("LEASEDESK_PORT", "eighty")

	if _, err := resolveConfig(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore dir: %v", err)
		}
	})
}
