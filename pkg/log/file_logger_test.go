package log

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pclscope/pcl-go/pkg/seq"
)

func TestFileLoggerAppendsAndTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.plog")

	for i := 0; i < 2; i++ {
		fl, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger: %v", err)
		}
		fl.Log(sequenceEvent("s", 0, true, seq.CategoryMisc))
		if fl.Written() != 1 {
			t.Errorf("Written() = %d, want 1", fl.Written())
		}
		fl.Close()
	}
	if n := countEvents(t, path); n != 2 {
		t.Errorf("after append: %d events, want 2", n)
	}

	fl, err := NewFileLogger(path, WithTruncate())
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	fl.Log(sequenceEvent("s", 0, true, seq.CategoryMisc))
	fl.Close()
	if n := countEvents(t, path); n != 1 {
		t.Errorf("after truncate: %d events, want 1", n)
	}
}

func countEvents(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	events, err := ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return len(events)
}

func TestFileLoggerCloseIdempotent(t *testing.T) {
	fl, err := NewFileLogger(filepath.Join(t.TempDir(), "trace.plog"))
	if err != nil {
		t.Fatal(err)
	}
	if err := fl.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := fl.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	fl.Log(sequenceEvent("s", 0, true, seq.CategoryMisc))
	if fl.Written() != 0 {
		t.Error("event written after Close")
	}
	if fl.Err() != nil {
		t.Errorf("Err() = %v", fl.Err())
	}
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.plog")
	fl, err := NewFileLogger(path)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				fl.Log(sequenceEvent("s", i%3, true, seq.CategoryColour))
			}
		}()
	}
	wg.Wait()
	fl.Close()

	if n := countEvents(t, path); n != 200 {
		t.Errorf("got %d events, want 200", n)
	}
}

func TestNewFileLoggerBadPath(t *testing.T) {
	if _, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "trace.plog")); err == nil {
		t.Error("expected error for missing directory")
	}
}
