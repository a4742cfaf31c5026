package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidatesExceptScripts(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatal(err)
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("defaults lack helper scripts and must not validate")
	}
	if !strings.Contains(err.Error(), "arm_split_script") {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[tools]
samtools = "/usr/local/bin/samtools"
varscan_jar = "/opt/VarScan.v2.3.9.jar"
arm_split_script = "/opt/scripts/split_arms.R"
segment_script = "/opt/scripts/segment_cbs.R"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Tools.Samtools != "/usr/local/bin/samtools" {
		t.Fatalf("samtools = %q", cfg.Tools.Samtools)
	}
	// Unset fields keep defaults.
	if cfg.Tools.Java != "java" {
		t.Fatalf("java default lost: %q", cfg.Tools.Java)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level = %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("format default lost: %q", cfg.Logging.Format)
	}
}

func TestLoadMissingExplicitFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	_, _, exists, err := Load(path)
	if exists {
		t.Fatal("missing file must report exists=false")
	}
	// Defaults fail validation because helper scripts are unset.
	if err == nil {
		t.Fatal("expected validation failure from defaults")
	}
}

func TestValidateLoggingFormat(t *testing.T) {
	cfg := Default()
	cfg.Tools.ArmSplitScript = "/opt/scripts/split.R"
	cfg.Tools.SegmentScript = "/opt/scripts/segment.R"
	cfg.Logging.Format = "yaml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected format validation error")
	}
}

func TestNormalizeExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in test environment")
	}
	cfg := Default()
	cfg.Tools.ArmSplitScript = "~/scripts/split.R"
	cfg.Tools.SegmentScript = "~/scripts/segment.R"
	if err := cfg.normalize(); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(home, "scripts", "split.R")
	if cfg.Tools.ArmSplitScript != want {
		t.Fatalf("expanded = %q, want %q", cfg.Tools.ArmSplitScript, want)
	}
}

func TestSampleConfigParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.toml")
	if err := os.WriteFile(path, []byte(SampleConfig()), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("sample should exist")
	}
	if cfg.Tools.VarScanJar == "" {
		t.Fatal("sample must carry a varscan jar path")
	}
}
