package log_test

import (
	"bytes"
	"encoding/json"
	"errors"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	applog "productgen/internal/log"
)

func capture(t *testing.T, fn func()) []map[string]any {
	t.Helper()
	var buf bytes.Buffer
	oldW, oldFlags := stdlog.Writer(), stdlog.Flags()
	stdlog.SetOutput(&buf)
	stdlog.SetFlags(0)
	defer func() {
		stdlog.SetOutput(oldW)
		stdlog.SetFlags(oldFlags)
	}()

	fn()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("not a json line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestWrite_WithoutRequest(t *testing.T) {
	entries := capture(t, func() {
		applog.Info(nil, "generate.progress", map[string]any{"done": 1000})
		applog.Error(nil, "dataset.save", errors.New("disk full"), nil)
	})
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}
	if entries[0]["level"] != "info" || entries[0]["action"] != "generate.progress" {
		t.Fatalf("entry 0: %v", entries[0])
	}
	if f, _ := entries[0]["fields"].(map[string]any); f["done"] != float64(1000) {
		t.Fatalf("fields: %v", entries[0]["fields"])
	}
	if entries[1]["level"] != "error" || entries[1]["err"] != "disk full" {
		t.Fatalf("entry 1: %v", entries[1])
	}
	if _, ok := entries[1]["path"]; ok {
		t.Fatalf("no request fields expected: %v", entries[1])
	}
}

func TestMirrorToFile_CloseRestoresOutput(t *testing.T) {
	var buf bytes.Buffer
	oldW := stdlog.Writer()
	stdlog.SetOutput(&buf)
	defer stdlog.SetOutput(oldW)

	path := filepath.Join(t.TempDir(), "app.log")
	m, err := applog.MirrorToFile(path)
	if err != nil {
		t.Fatal(err)
	}
	applog.Info(nil, "import.done", nil)
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	applog.Info(nil, "after.close", nil)

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "import.done") || strings.Contains(string(raw), "after.close") {
		t.Fatalf("file contents %q", raw)
	}
	if !strings.Contains(buf.String(), "import.done") || !strings.Contains(buf.String(), "after.close") {
		t.Fatalf("previous writer lost output: %q", buf.String())
	}
	if stdlog.Writer() != &buf {
		t.Fatal("log output not restored")
	}
}
