package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"copycall/internal/services"
)

func writePileup(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pileup")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckPileupNamingHealthy(t *testing.T) {
	path := writePileup(t,
		"chr1\t100\tA\t30\t...\t30\t...",
		"chr1\t101\tC\t31\t...\t29\t...",
	)
	if err := checkPileupNaming(path); err != nil {
		t.Fatalf("healthy pileup flagged: %v", err)
	}
}

func TestCheckPileupNamingAllPlaceholders(t *testing.T) {
	path := writePileup(t,
		"chr1\t100\tN\t30\t...\t30\t...",
		"chr1\t101\tn\t31\t...\t29\t...",
	)
	err := checkPileupNaming(path)
	if err == nil {
		t.Fatal("all-N pileup should fail the naming check")
	}
	if !errors.Is(err, services.ErrSanity) {
		t.Errorf("error = %v, want ErrSanity", err)
	}
}

func TestCheckPileupNamingLatePlaceholderStops(t *testing.T) {
	// A single real base anywhere in the sample clears the check even when
	// placeholders follow.
	path := writePileup(t,
		"chr1\t100\tN\t30\t...\t30\t...",
		"chr1\t101\tG\t31\t...\t29\t...",
		"chr1\t102\tN\t31\t...\t29\t...",
	)
	if err := checkPileupNaming(path); err != nil {
		t.Fatalf("mixed pileup flagged: %v", err)
	}
}

func TestCheckPileupNamingEmptyFilePasses(t *testing.T) {
	path := writePileup(t)
	// writePileup always appends a newline; truncate to truly empty.
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := checkPileupNaming(path); err != nil {
		t.Fatalf("empty pileup flagged: %v", err)
	}
}

func TestCheckPileupNamingMalformedLinePasses(t *testing.T) {
	path := writePileup(t, "garbage")
	if err := checkPileupNaming(path); err != nil {
		t.Fatalf("malformed pileup flagged: %v", err)
	}
}

func TestCheckPileupNamingMissingFile(t *testing.T) {
	err := checkPileupNaming(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("expected error for missing pileup")
	}
	if !errors.Is(err, services.ErrSanity) {
		t.Errorf("error = %v, want ErrSanity", err)
	}
}
