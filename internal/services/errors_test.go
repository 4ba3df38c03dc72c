package services_test

import (
	"errors"
	"strings"
	"testing"

	"webpify/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrCodec, "convert", "encode", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrCodec) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"convert", "encode", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapNilMarkerDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "convert", "rename", "publish", errors.New("io"))
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
}

func TestClassifySeverity(t *testing.T) {
	fatal := []error{
		services.Wrap(services.ErrInvalidInput, "scan", "resolve", "not a file", nil),
		services.Wrap(services.ErrNoImages, "scan", "walk", "empty", nil),
		services.Wrap(services.ErrPreflight, "preflight", "access", "denied", nil),
		services.Wrap(services.ErrInsufficientSpace, "preflight", "space", "full", nil),
		services.Wrap(services.ErrLocked, "runlock", "acquire", "held", nil),
	}
	for _, err := range fatal {
		if got := services.Classify(err); got != services.SeverityRun {
			t.Fatalf("Classify(%v) = %s, want run", err, got)
		}
	}

	perFile := []error{
		services.Wrap(services.ErrCodec, "convert", "decode", "corrupt", errors.New("bad header")),
		services.Wrap(services.ErrEmptyOutput, "convert", "validate", "zero bytes", nil),
		services.Wrap(services.ErrSymlinkOverwrite, "convert", "publish", "symlink", nil),
		services.Wrap(services.ErrTransient, "convert", "stat", "io", errors.New("io")),
		errors.New("untagged"),
		nil,
	}
	for _, err := range perFile {
		if got := services.Classify(err); got != services.SeverityFile {
			t.Fatalf("Classify(%v) = %s, want file", err, got)
		}
	}
}

func TestSeverityString(t *testing.T) {
	if services.SeverityRun.String() != "run" {
		t.Fatalf("unexpected run label %q", services.SeverityRun.String())
	}
	if services.SeverityFile.String() != "file" {
		t.Fatalf("unexpected file label %q", services.SeverityFile.String())
	}
}
