package logging

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestNewLogger(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger("client", WithDirectory(dir))
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	if logger.LogPath() == "" {
		t.Fatal("Expected a log path")
	}
	if !strings.HasSuffix(logger.LogPath(), "-cogmem.log") {
		t.Errorf("Unexpected log file name: %s", logger.LogPath())
	}
}

func TestLogger_WritesTaggedLines(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger("request", WithDirectory(dir))
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Debugf("GET /cogmemai/usage -> %d", 200)
	logger.Errorf("request failed: %s", "timeout")
	logger.Close()

	data, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "[request] [DEBUG] GET /cogmemai/usage -> 200") {
		t.Errorf("Missing debug line, got:\n%s", content)
	}
	if !strings.Contains(content, "[request] [ERROR] request failed: timeout") {
		t.Errorf("Missing error line, got:\n%s", content)
	}
}

func TestLogger_ComponentsShareSessionFile(t *testing.T) {
	dir := t.TempDir()

	first, err := NewLogger("cli", WithDirectory(dir))
	if err != nil {
		t.Fatalf("Failed to create first logger: %v", err)
	}
	defer first.Close()

	second, err := NewLogger("client", WithDirectory(dir))
	if err != nil {
		t.Fatalf("Failed to create second logger: %v", err)
	}
	defer second.Close()

	if first.LogPath() != second.LogPath() {
		t.Errorf("Expected shared session file, got %s and %s", first.LogPath(), second.LogPath())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read log dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected one log file, found %d", len(entries))
	}
}

func TestLogger_ConcurrentWrites(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger("concurrent", WithDirectory(dir))
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.Infof("goroutine %d", n)
		}(i)
	}
	wg.Wait()
	logger.Close()

	data, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	lines := strings.Count(string(data), "\n")
	if lines != 10 {
		t.Errorf("Expected 10 log lines, got %d", lines)
	}
}

func TestSessionID_Stable(t *testing.T) {
	if SessionID() != SessionID() {
		t.Error("SessionID should be stable within a process")
	}
}

func TestLogger_FallbackOnBadDirectory(t *testing.T) {
	// A file where the directory should be forces MkdirAll to fail.
	base := t.TempDir()
	blocked := filepath.Join(base, "blocked")
	if err := os.WriteFile(blocked, []byte("x"), 0600); err != nil {
		t.Fatalf("Failed to create blocking file: %v", err)
	}

	logger, err := NewLogger("fallback", WithDirectory(filepath.Join(blocked, "logs")))
	if err == nil {
		t.Error("Expected an error for unusable directory")
	}
	if logger == nil {
		t.Fatal("Expected a fallback logger despite the error")
	}
	if logger.LogPath() != "" {
		t.Errorf("Fallback logger should have no file path, got %s", logger.LogPath())
	}

	// Must not panic
	logger.Warnf("still alive")
}
