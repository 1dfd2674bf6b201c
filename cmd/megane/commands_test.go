package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func xyzFixture(elemA string, xA float64, elemB string, xB float64) string {
	return fmt.Sprintf("2\ncomment\n%s %.3f 0.0 0.0\n%s %.3f 0.0 0.0\n", elemA, xA, elemB, xB)
}

func TestParseCommandPrintsSummary(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "mol.xyz", xyzFixture("C", 0.0, "O", 1.2))

	var out bytes.Buffer
	app := application()
	app.Writer = &out

	args := []string{"megane", "parse", "--format", "xyz", path}
	if err := app.Run(args); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var got summary
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v (output: %s)", err, out.String())
	}

	want := summary{NAtoms: 2, NBonds: 1, NFileBonds: 0, NFrames: 1, HasBox: false}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestHashCommandIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "mol.xyz", xyzFixture("C", 0.0, "O", 1.2))

	run := func() string {
		var out bytes.Buffer
		app := application()
		app.Writer = &out
		args := []string{"megane", "hash", "--format", "xyz", path}
		if err := app.Run(args); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		return out.String()
	}

	first := run()
	second := run()
	if first != second {
		t.Errorf("hash not deterministic: %q != %q", first, second)
	}
}

func TestParseCommandMissingFormatErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "mol.xyz", xyzFixture("C", 0.0, "O", 1.2))

	app := application()
	args := []string{"megane", "parse", path}
	if err := app.Run(args); err == nil {
		t.Fatal("expected error when --format is omitted")
	}
}

func TestTopCommandRequiresNAtoms(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "topo.top", "[ bonds ]\n1 2 1\n")

	app := application()
	args := []string{"megane", "parse", "--format", "top", path}
	if err := app.Run(args); err == nil {
		t.Fatal("expected error when --n-atoms is omitted for top format")
	}
}
