package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"webpify/internal/services/codec"
)

// fakeCodec stands in for the real encoder so CLI tests exercise the full
// command path without paying for image compression.
type fakeCodec struct {
	mu      sync.Mutex
	payload []byte
	failOn  map[string]bool
	calls   int
	opts    []codec.Options
}

func newFakeCodec() *fakeCodec {
	return &fakeCodec{payload: []byte("webp-payload"), failOn: map[string]bool{}}
}

func (f *fakeCodec) Probe(ctx context.Context, path string) (codec.Metadata, error) {
	if err := ctx.Err(); err != nil {
		return codec.Metadata{}, err
	}
	return codec.Metadata{Format: "png", Width: 8, Height: 8, ColorSpace: "rgb"}, nil
}

func (f *fakeCodec) Encode(ctx context.Context, path string, opts codec.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.opts = append(f.opts, opts)
	if f.failOn[filepath.Base(path)] {
		return nil, errors.New("encoder rejected frame")
	}
	return append([]byte(nil), f.payload...), nil
}

func (f *fakeCodec) encodeCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeCodec) lastOpts() codec.Options {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.opts) == 0 {
		return codec.Options{}
	}
	return f.opts[len(f.opts)-1]
}

func useFakeCodec(t *testing.T, service codec.Service) {
	t.Helper()
	original := newCodecService
	newCodecService = func() codec.Service { return service }
	t.Cleanup(func() { newCodecService = original })
}

func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()
	content := fmt.Sprintf(
		"[conversion]\nquality = 80\nmax_concurrency = 2\n\n[output]\nlock = false\n\n[logging]\nlevel = %q\n",
		"error",
	)
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func writeSourceImage(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte("source-image-bytes"), 0o644); err != nil {
		t.Fatalf("write image %s: %v", path, err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
