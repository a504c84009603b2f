package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDisabledLoggingIsNoOp(t *testing.T) {
	if err := Initialize("", false, "info"); err != nil {
		t.Fatal(err)
	}
	defer Shutdown()

	// Must not panic or create files
	Boot("starting %s", "up")
	RouterError("dispatch failed: %v", "boom")
	Get(CategoryLLM).Debug("ignored")
}

func TestEnabledLoggingWritesCategoryFile(t *testing.T) {
	dir := t.TempDir()
	if err := Initialize(dir, true, "debug"); err != nil {
		t.Fatal(err)
	}
	defer Shutdown()

	Gateway("news query %q: %d items", "두산", 3)
	GatewayError("scrape failed: %v", "timeout")

	data, err := os.ReadFile(filepath.Join(dir, "gateway.log"))
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, `[INFO] news query "두산": 3 items`) {
		t.Errorf("missing info line:\n%s", out)
	}
	if !strings.Contains(out, "[ERROR] scrape failed: timeout") {
		t.Errorf("missing error line:\n%s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()
	if err := Initialize(dir, true, "error"); err != nil {
		t.Fatal(err)
	}
	defer Shutdown()

	Router("routed fine")
	RouterError("routed badly")

	data, err := os.ReadFile(filepath.Join(dir, "router.log"))
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, "routed fine") {
		t.Error("info line should be filtered at error level")
	}
	if !strings.Contains(out, "routed badly") {
		t.Error("error line missing")
	}
}
