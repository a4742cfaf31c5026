package services

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapIncludesStageContext(t *testing.T) {
	err := Wrap(ErrValidation, "copynumber", "verify output", "output.copynumber missing or truncated", nil)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
	for _, fragment := range []string{"copynumber", "verify output", "output.copynumber"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Fatalf("error %q missing fragment %q", err.Error(), fragment)
		}
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("exit status 1")
	err := Wrap(ErrExternalTool, "mpileup", "execute", "", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	if !errors.Is(err, ErrExternalTool) {
		t.Fatalf("expected external tool marker, got %v", err)
	}
}

func TestWrapNilMarkerDefaults(t *testing.T) {
	err := Wrap(nil, "", "", "", nil)
	if !errors.Is(err, ErrExternalTool) {
		t.Fatalf("expected default marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "pipeline failure") {
		t.Fatalf("expected generic detail, got %q", err.Error())
	}
}

func TestIsFatalUsage(t *testing.T) {
	if !IsFatalUsage(Wrap(ErrUsage, "", "parse flags", "control bam is required", nil)) {
		t.Fatal("expected usage classification")
	}
	if IsFatalUsage(Wrap(ErrSanity, "mpileup", "", "reference mismatch", nil)) {
		t.Fatal("sanity errors are not usage errors")
	}
}
