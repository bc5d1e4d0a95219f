package task

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

var testNow = time.Date(2024, 6, 10, 8, 13, 20, 500_000_000, time.Local)

func fixedClock() time.Time {
	return testNow
}

// openTestStore opens a store on a fresh temp file with a frozen clock and a
// captured logger.
func openTestStore(t *testing.T) (*Store, *bytes.Buffer) {
	t.Helper()
	return openTestStoreAt(t, filepath.Join(t.TempDir(), DefaultFile))
}

func openTestStoreAt(t *testing.T, path string) (*Store, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	return Open(path, WithLogger(logger), WithClock(fixedClock)), &buf
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mustReadTasks(t *testing.T, path string) []Task {
	t.Helper()
	tasks, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) failed: %v", path, err)
	}
	return tasks
}
