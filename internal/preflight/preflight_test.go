package preflight

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"copycall/internal/config"
	"copycall/internal/tools"
)

type versionExecutor struct {
	output string
}

func (v versionExecutor) Run(_ context.Context, _ string, _ []string, stdout io.Writer, _ func(string)) error {
	if stdout != nil {
		_, _ = io.WriteString(stdout, v.output)
	}
	return nil
}

func writeInput(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("data\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testInputs(t *testing.T, dir string) Inputs {
	return Inputs{
		ControlBAM:  writeInput(t, dir, "control.bam"),
		TumorBAM:    writeInput(t, dir, "tumor.bam"),
		Reference:   writeInput(t, dir, "genome.fa"),
		Centromeres: writeInput(t, dir, "centromeres.tsv"),
		Whitelist:   writeInput(t, dir, "targets.bed"),
	}
}

func testConfig(t *testing.T, dir string) *config.Config {
	cfg := config.Default()
	cfg.Tools.Samtools = "sh" // present everywhere
	cfg.Tools.Java = "sh"
	cfg.Tools.Rscript = "sh"
	cfg.Tools.VarScanJar = writeInput(t, dir, "VarScan.jar")
	cfg.Tools.ArmSplitScript = writeInput(t, dir, "split_arms.R")
	cfg.Tools.SegmentScript = writeInput(t, dir, "segment_cbs.R")
	return &cfg
}

func TestRunAllPasses(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	samtools, err := tools.NewSamtools("sh", tools.WithExecutor(versionExecutor{output: "samtools 1.19.2\n"}))
	if err != nil {
		t.Fatal(err)
	}

	results := RunAll(context.Background(), cfg, testInputs(t, dir), samtools)
	if failures := Failed(results); len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
}

func TestRunAllReportsMissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	in := testInputs(t, dir)
	in.TumorBAM = filepath.Join(dir, "absent.bam")

	results := RunAll(context.Background(), cfg, in, nil)
	failures := Failed(results)
	if len(failures) != 1 {
		t.Fatalf("expected one failure, got %v", failures)
	}
}

func TestRunAllReportsOldSamtools(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	samtools, err := tools.NewSamtools("sh", tools.WithExecutor(versionExecutor{output: "samtools 0.1.19\n"}))
	if err != nil {
		t.Fatal(err)
	}

	results := RunAll(context.Background(), cfg, testInputs(t, dir), samtools)
	failures := Failed(results)
	if len(failures) != 1 {
		t.Fatalf("expected version failure, got %v", failures)
	}
}

func TestSupportedSamtoolsVersion(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"1.9", true},
		{"1.19.2", true},
		{"2.0", true},
		{"0.1.19", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := supportedSamtoolsVersion(tt.version); got != tt.want {
			t.Fatalf("supportedSamtoolsVersion(%q) = %v, want %v", tt.version, got, tt.want)
		}
	}
}
