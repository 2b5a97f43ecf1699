package logging_test

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gainfx/gainfx/logging"
)

func TestInitWritesToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "tmp")
	closer, err := logging.Init(dir, "test.log")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	log.Print("init")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "test.log"))
	if err != nil {
		t.Fatalf("cannot read log file: %v", err)
	}
	if !strings.Contains(string(b), "init") {
		t.Errorf("log file does not contain the message: %q", b)
	}
}

func TestInitSharedBetweenInstances(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shared.log")
	first, err := logging.Init(dir, "shared.log")
	if err != nil {
		t.Fatalf("first Init: %v", err)
	}
	log.Print("first instance")
	second, err := logging.Init(dir, "shared.log")
	if err != nil {
		t.Fatalf("second Init: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("closing the first instance: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("closing twice: %v", err)
	}
	log.Print("second instance")
	if err := second.Close(); err != nil {
		t.Fatalf("closing the second instance: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read log file: %v", err)
	}
	for _, msg := range []string{"first instance", "second instance"} {
		if !strings.Contains(string(b), msg) {
			t.Errorf("log file lacks %q: %q", msg, b)
		}
	}
	log.Print("after close")
	b, _ = os.ReadFile(path)
	if strings.Contains(string(b), "after close") {
		t.Error("log still goes to the file after the last Close")
	}
}

func TestInitFailsOnUnwritableDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := logging.Init(filepath.Join(blocker, "sub"), "test.log"); err == nil {
		t.Error("expected an error when the log directory cannot be created")
	}
}

func TestLogPanicsRepanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
	}()
	func() {
		defer logging.LogPanics()
		panic("boom")
	}()
}
