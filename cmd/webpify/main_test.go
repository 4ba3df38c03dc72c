package main

import (
	"strings"
	"testing"
)

func TestCLIRootWithoutArgsShowsHelp(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	out, _, err := runCLI(t, nil, configPath)
	if err != nil {
		t.Fatalf("root help: %v", err)
	}
	requireContains(t, out, "Usage:")
	requireContains(t, out, "webpify [flags] PATH...")
}

func TestCLIVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"version"}, "")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "webpify")
	requireContains(t, out, version)
}

func TestCLIFormatsCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"formats"}, "")
	if err != nil {
		t.Fatalf("formats: %v", err)
	}
	for _, ext := range []string{".png", ".jpg", ".tiff", ".webp"} {
		requireContains(t, out, ext)
	}
	if strings.Contains(out, ".svg") {
		t.Fatal("vector formats are not convertible")
	}
}
