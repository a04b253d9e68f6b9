package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"svw.info/cephalopod/internal/logging"
)

func TestEnsurePersistPathWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "info")

	dir := filepath.Join(t.TempDir(), "data")
	if !ensurePersistPath(logger, dir) {
		t.Fatalf("expected %s to be created: %s", dir, buf.String())
	}

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if ensurePersistPath(logger, filepath.Join(blocker, "data")) {
		t.Fatalf("a path below a regular file cannot be created")
	}
	if !strings.Contains(buf.String(), "level=WARN") || !strings.Contains(buf.String(), "persist path") {
		t.Fatalf("missing warning in %q", buf.String())
	}
}
