package adapters

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestZerologWrapper_WritesEverySink(t *testing.T) {
	var sink bytes.Buffer
	logger := NewZerologWrapperWithOptions("warn", "json", &sink)

	logger.Info("dropped below warn")
	logger.With(map[string]interface{}{"call_sid": "CA1"}).ErrorWithFields(errors.New("boom"), "Pipeline failed", map[string]interface{}{
		"stage": "fetch",
	})

	lines := strings.Split(strings.TrimSpace(sink.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record above warn, got %q", sink.String())
	}
	var record map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatal(err)
	}
	if record["message"] != "Pipeline failed" || record["call_sid"] != "CA1" || record["stage"] != "fetch" || record["error"] != "boom" {
		t.Fatalf("unexpected record %v", record)
	}
}

func TestNewRotatingLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "agent.log")
	file := NewRotatingLogFile(path, 500, 5)

	NewZerologWrapperWithOptions("info", "console", file).Info("Server started")
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal("log file not created:", err)
	}
	if !strings.Contains(string(content), `"message":"Server started"`) {
		t.Fatalf("unexpected log file content %q", content)
	}
}
