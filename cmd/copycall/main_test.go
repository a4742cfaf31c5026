package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func writeTestFile(t *testing.T, path string, lines ...string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("second init without --overwrite should fail")
	}
	if _, _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("init with --overwrite: %v", err)
	}
}

func TestPlanListsStages(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "control.flagstat"),
		"1000 + 0 in total", "900 + 0 mapped (90.00% : N/A)")

	out, _, err := runCLI(t, "plan", "--resume-dir", dir)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	requireContains(t, out, "flagstat-control")
	requireContains(t, out, "segmentation")
	requireContains(t, out, "output.copynumber.recentered.arms.segments")
}

func TestPlanRejectsMissingDirectory(t *testing.T) {
	if _, _, err := runCLI(t, "plan", "--resume-dir", filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("plan on a missing directory should fail")
	}
}

func TestRunDebugExecutesAndWritesNothing(t *testing.T) {
	base := t.TempDir()

	configPath := filepath.Join(base, "config.toml")
	writeTestFile(t, configPath,
		"[tools]",
		`arm_split_script = "`+filepath.Join(base, "arm_split.R")+`"`,
		`segment_script = "`+filepath.Join(base, "segment.R")+`"`,
	)

	inputs := map[string]string{}
	for _, name := range []string{"control.bam", "tumor.bam", "reference.fa", "centromeres.txt", "whitelist.bed"} {
		path := filepath.Join(base, name)
		writeTestFile(t, path, "placeholder", "placeholder")
		inputs[name] = path
	}

	scratch := filepath.Join(base, "scratch")
	if err := os.Mkdir(scratch, 0o755); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t,
		"--config", configPath,
		"run", "--debug",
		"--scratch-dir", scratch,
		"--control-bam", inputs["control.bam"],
		"--tumor-bam", inputs["tumor.bam"],
		"--reference", inputs["reference.fa"],
		"--centromeres", inputs["centromeres.txt"],
		"--whitelist", inputs["whitelist.bed"],
	)
	if err != nil {
		t.Fatalf("debug run: %v", err)
	}
	if out != "" {
		t.Errorf("debug run wrote to stdout: %q", out)
	}

	entries, err := os.ReadDir(scratch)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("debug run created %d entries under the scratch root", len(entries))
	}
}

func TestRunRequiresWorkDirectoryFlag(t *testing.T) {
	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	writeTestFile(t, configPath,
		"[tools]",
		`arm_split_script = "`+filepath.Join(base, "arm_split.R")+`"`,
		`segment_script = "`+filepath.Join(base, "segment.R")+`"`,
	)
	input := filepath.Join(base, "input")
	writeTestFile(t, input, "placeholder", "placeholder")

	_, _, err := runCLI(t,
		"--config", configPath,
		"run",
		"--control-bam", input,
		"--tumor-bam", input,
		"--reference", input,
		"--centromeres", input,
		"--whitelist", input,
	)
	if err == nil {
		t.Fatal("run without --scratch-dir or --resume-dir should fail")
	}
}
