package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddrDefaults(t *testing.T) {
	var cfg Config
	if got := cfg.Addr(); got != "0.0.0.0:8080" {
		t.Fatalf("zero config addr: got %q", got)
	}
	cfg.Server.Address = "127.0.0.1"
	cfg.Server.Port = 9000
	if got := cfg.Addr(); got != "127.0.0.1:9000" {
		t.Fatalf("explicit addr: got %q", got)
	}
}

func TestLoadEffective_FileEnvFlagsMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
server:
  address: 127.0.0.1
  port: 9000
security:
  rate_limit:
    rps: 10
    burst: 20
limits:
  max_msg_len: 280
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("CHIRPD_RATE_RPS", "5")
	t.Setenv("CHIRPD_API_BACKEND_KEYS", "k1, k2")

	eff, err := LoadEffective(Flags{
		Addr:   "127.0.0.1:7000",
		Config: path,
		Set:    map[string]bool{"config": true, "addr": true},
	})
	if err != nil {
		t.Fatalf("load effective: %v", err)
	}
	if eff.Addr != "127.0.0.1:7000" {
		t.Fatalf("flag addr should win, got %q", eff.Addr)
	}
	if eff.Source != "config,env,flags" {
		t.Fatalf("unexpected source %q", eff.Source)
	}
	if eff.Config.Security.RateLimit.RPS != 5 {
		t.Fatalf("env should override file rps, got %v", eff.Config.Security.RateLimit.RPS)
	}
	if eff.Config.Security.RateLimit.Burst != 20 {
		t.Fatalf("file burst should survive, got %d", eff.Config.Security.RateLimit.Burst)
	}
	if got := eff.Config.Security.APIKeys.Backend; len(got) != 2 || got[0] != "k1" || got[1] != "k2" {
		t.Fatalf("backend keys not parsed, got %v", got)
	}
	if eff.Config.Limits.MaxMsgLen != 280 {
		t.Fatalf("limits not loaded, got %d", eff.Config.Limits.MaxMsgLen)
	}
}

func TestLoadEffective_MissingFileIsFine(t *testing.T) {
	eff, err := LoadEffective(Flags{
		Config: filepath.Join(t.TempDir(), "nope.yaml"),
		Set:    map[string]bool{"config": true},
	})
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if eff.Addr != "0.0.0.0:8080" {
		t.Fatalf("expected default addr, got %q", eff.Addr)
	}
}

func TestLoadEffective_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadEffective(Flags{Config: path, Set: map[string]bool{"config": true}}); err == nil {
		t.Fatalf("malformed file should error")
	}
}

func TestEnvAddrSplit(t *testing.T) {
	t.Setenv("CHIRPD_ADDR", "10.0.0.5:9999")
	var cfg Config
	if !applyEnvOverrides(&cfg) {
		t.Fatalf("env should be reported as used")
	}
	if cfg.Server.Address != "10.0.0.5" || cfg.Server.Port != 9999 {
		t.Fatalf("addr not split: %+v", cfg.Server)
	}
}

func TestRuntimeKeys(t *testing.T) {
	SetRuntime(&RuntimeConfig{
		BackendKeys: map[string]struct{}{"b": {}},
		AdminKeys:   map[string]struct{}{"a": {}},
	})
	defer SetRuntime(nil)
	backend := GetBackendKeys()
	if _, ok := backend["b"]; !ok || len(backend) != 1 {
		t.Fatalf("backend keys: %v", backend)
	}
	admin := GetAdminKeys()
	if _, ok := admin["a"]; !ok || len(admin) != 1 {
		t.Fatalf("admin keys: %v", admin)
	}
}
