package artifact

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"two lines", "header\nrow\n", true},
		{"many lines", "a\nb\nc\nd\n", true},
		{"second line empty", "a\n\n", true},
		{"single line", "Exception in thread main\n", false},
		{"single line no newline", "partial", false},
		{"single long line", strings.Repeat("x", 1<<20) + "\n", false},
		{"empty file", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "artifact.txt", tt.content)
			if got := Valid(path); got != tt.want {
				t.Fatalf("Valid(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestValidMissingFile(t *testing.T) {
	if Valid(filepath.Join(t.TempDir(), "nope.tsv")) {
		t.Fatal("missing file must be invalid")
	}
}

func TestArtifactValid(t *testing.T) {
	path := writeFile(t, "out.tsv", "chrom\tpos\nchr1\t100\n")
	if !New(path).Valid() {
		t.Fatal("expected valid artifact")
	}
}

func TestAlignment(t *testing.T) {
	if !New("/data/control.bam").Alignment() {
		t.Fatal("bam should be treated as alignment")
	}
	if !New("/data/CONTROL.BAM").Alignment() {
		t.Fatal("extension check should ignore case")
	}
	if New("/work/control.flagstat").Alignment() {
		t.Fatal("flagstat report is not an alignment")
	}
}
