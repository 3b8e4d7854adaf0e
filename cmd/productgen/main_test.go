package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected and returns what it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdout
	os.Stdout = w
	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()
	fn()
	w.Close()
	os.Stdout = old
	return <-done
}

func TestGenerate_InvalidArgsStopBeforeBanner(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("LOG_FILE", "")

	for _, args := range [][]string{
		{"generate", "-count", "0"},
		{"-count", "-4"},
		{"generate", "-count", "3", "-format", "xml"},
	} {
		var code int
		out := captureStdout(t, func() { code = run(args) })
		if code != 2 {
			t.Fatalf("%v: exit %d, want 2", args, code)
		}
		if strings.Contains(out, "Generating") {
			t.Fatalf("%v: banner printed before validation: %q", args, out)
		}
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Fatalf("files written on invalid args: %v", entries)
	}
}

func TestGenerate_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("LOG_FILE", "")

	var code int
	out := captureStdout(t, func() {
		code = run([]string{"-count", "3", "-format", "csv", "-output", "cli", "-seed", "5"})
	})
	if code != 0 {
		t.Fatalf("exit %d: %s", code, out)
	}
	if !strings.Contains(out, "Generating 3 products") || !strings.Contains(out, "Sample product:") {
		t.Fatalf("output %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "cli.csv")); err != nil {
		t.Fatal(err)
	}
}

func TestRun_ClosesLogMirror(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	logPath := filepath.Join(dir, "run.log")
	t.Setenv("LOG_FILE", logPath)

	before := log.Writer()
	captureStdout(t, func() {
		if code := run([]string{"generate", "-count", "1", "-format", "json"}); code != 0 {
			t.Errorf("exit %d", code)
		}
	})
	if log.Writer() != before {
		t.Fatal("log mirror still installed after run returned")
	}
	raw, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "generate.done") {
		t.Fatalf("log file %q", raw)
	}
}

func TestUnknownCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOG_FILE", "")
	if code := run([]string{"frobnicate"}); code != 2 {
		t.Fatalf("exit %d", code)
	}
}
