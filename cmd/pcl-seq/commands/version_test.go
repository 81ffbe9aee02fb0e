package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pclscope/pcl-go/pkg/catalog"
	"github.com/pclscope/pcl-go/pkg/version"
)

func TestRunVersion_Embedded(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunVersion(nil, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("expected exit code %d, got %d; stderr: %s", exitSuccess, exitCode, stderr.String())
	}
	output := stdout.String()
	if !strings.Contains(output, version.Info()) {
		t.Errorf("expected version banner, got: %s", output)
	}
	for _, name := range catalog.Files() {
		if !strings.Contains(output, name) {
			t.Errorf("expected %s in output, got: %s", name, output)
		}
	}
	if strings.Contains(output, "override") || strings.Contains(output, "newer than") {
		t.Errorf("embedded catalog reported as override or newer: %s", output)
	}
}

func TestRunVersion_NewerOverride(t *testing.T) {
	dir := t.TempDir()
	data := "version: \"1.9.0\"\nitems:\n  - {id: 0, name: \"Portrait\"}\n"
	if err := os.WriteFile(filepath.Join(dir, catalog.FileOrientations), []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunVersion([]string{"-catalog", dir}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("expected exit code %d, got %d; stderr: %s", exitSuccess, exitCode, stderr.String())
	}
	var line string
	for _, l := range strings.Split(stdout.String(), "\n") {
		if strings.Contains(l, catalog.FileOrientations) {
			line = l
		}
	}
	if !strings.Contains(line, "1.9.0") || !strings.Contains(line, "override") || !strings.Contains(line, "newer than "+version.CatalogSchema) {
		t.Errorf("unexpected orientations line: %q", line)
	}
	// The default warn level surfaces the loader's warning.
	if !strings.Contains(stderr.String(), "catalog file is newer than this release") {
		t.Errorf("expected newer-version warning on stderr, got: %s", stderr.String())
	}
}

func TestRunVersion_InvalidFlag(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	if exitCode := RunVersion([]string{"-bogus"}, stdout, stderr); exitCode != exitCommandError {
		t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
	}
}
