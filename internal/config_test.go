package internal

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/njoroge/campus-share/testutil"
)

func TestLoadConfig_Defaults(t *testing.T) {
	dir := testutil.CreateTempDir(t)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.DataDir != dir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, dir)
	}
	if cfg.GateRate != 0.9 {
		t.Errorf("GateRate = %v, want 0.9", cfg.GateRate)
	}
	if cfg.DefaultFee != 50 {
		t.Errorf("DefaultFee = %v, want 50", cfg.DefaultFee)
	}
	if got := cfg.ResourceDBPath(); got != filepath.Join(dir, "resources.db") {
		t.Errorf("ResourceDBPath() = %q", got)
	}
	if got := cfg.ChatDBPath(); got != filepath.Join(dir, "chats.db") {
		t.Errorf("ChatDBPath() = %q", got)
	}
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	testutil.WriteFile(t, dir, "config.yaml", []byte(`
admins:
  - admin@campus.edu
  - superadmin@campus.edu
gate_success_rate: 0.5
default_fee: 25
resource_db: /tmp/custom/resources.db
`))

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	want := []string{"admin@campus.edu", "superadmin@campus.edu"}
	if !reflect.DeepEqual(cfg.Admins, want) {
		t.Errorf("Admins = %v, want %v", cfg.Admins, want)
	}
	if cfg.GateRate != 0.5 {
		t.Errorf("GateRate = %v, want 0.5", cfg.GateRate)
	}
	if cfg.DefaultFee != 25 {
		t.Errorf("DefaultFee = %v, want 25", cfg.DefaultFee)
	}
	if cfg.ResourceDBPath() != "/tmp/custom/resources.db" {
		t.Errorf("ResourceDBPath() = %q", cfg.ResourceDBPath())
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	testutil.WriteFile(t, dir, "config.yaml", []byte(`admins: [unclosed`))

	if _, err := LoadConfig(dir); err == nil {
		t.Error("LoadConfig() should fail on malformed YAML")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	t.Setenv("CAMPUS_SHARE_ADMINS", "root@campus.edu, ops@campus.edu")
	t.Setenv("CAMPUS_SHARE_GATE_RATE", "1")
	t.Setenv("CAMPUS_SHARE_FEE", "10")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	want := []string{"root@campus.edu", "ops@campus.edu"}
	if !reflect.DeepEqual(cfg.Admins, want) {
		t.Errorf("Admins = %v, want %v", cfg.Admins, want)
	}
	if cfg.GateRate != 1 {
		t.Errorf("GateRate = %v, want 1", cfg.GateRate)
	}
	if cfg.DefaultFee != 10 {
		t.Errorf("DefaultFee = %v, want 10", cfg.DefaultFee)
	}
}

func TestConfig_IsAdmin(t *testing.T) {
	cfg := &Config{Admins: []string{"Admin@Campus.edu"}}

	if !cfg.IsAdmin("admin@campus.edu") {
		t.Error("IsAdmin() should match case-insensitively")
	}
	if !cfg.IsAdmin("ADMIN@CAMPUS.EDU") {
		t.Error("IsAdmin() should match case-insensitively")
	}
	if cfg.IsAdmin("user@campus.edu") {
		t.Error("IsAdmin() should reject emails off the allow-list")
	}
	if cfg.IsAdmin("") {
		t.Error("IsAdmin() should reject an empty email")
	}
}
