package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFilterCopyNumberKeepsHeaderAndCoveredRows(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "raw")
	dst := filepath.Join(dir, "filtered")

	lines := []string{
		"chrom\tchr_start\tchr_stop\tnum_positions\tnormal_depth\ttumor_depth\tlog2_ratio",
		"chr1\t100\t200\t50\t25.0\t15.0\t0.10",  // passes both floors
		"chr1\t200\t300\t50\t19.9\t15.0\t0.10",  // control below floor
		"chr1\t300\t400\t50\t25.0\t9.9\t0.10",   // tumor below floor
		"chr1\t400\t500\t50\t20.0\t10.0\t0.10",  // exactly at both floors
		"chr1\t500\t600\t50\t19.0\t9.0\t0.10",   // below both
		"chr2\t100\t200\t50\tbogus\t15.0\t0.10", // unparseable depth
	}
	if err := os.WriteFile(src, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	kept, dropped, err := filterCopyNumber(src, dst)
	if err != nil {
		t.Fatalf("filterCopyNumber: %v", err)
	}
	if kept != 2 {
		t.Errorf("kept = %d, want 2", kept)
	}
	if dropped != 4 {
		t.Errorf("dropped = %d, want 4", dropped)
	}

	out, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	want := []string{lines[0], lines[1], lines[4]}
	if len(got) != len(want) {
		t.Fatalf("output has %d lines, want %d:\n%s", len(got), len(want), out)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilterCopyNumberHeaderOnlyInput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "raw")
	dst := filepath.Join(dir, "filtered")
	if err := os.WriteFile(src, []byte("chrom\tchr_start\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	kept, dropped, err := filterCopyNumber(src, dst)
	if err != nil {
		t.Fatalf("filterCopyNumber: %v", err)
	}
	if kept != 0 || dropped != 0 {
		t.Errorf("kept, dropped = %d, %d, want 0, 0", kept, dropped)
	}
	out, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "chrom\tchr_start\n" {
		t.Errorf("output = %q, want header only", out)
	}
}

func TestFilterCopyNumberMissingSource(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := filterCopyNumber(filepath.Join(dir, "absent"), filepath.Join(dir, "out")); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestPassesCoverageShortLine(t *testing.T) {
	if passesCoverage("chr1\t100\t200") {
		t.Error("short line should not pass coverage")
	}
}
