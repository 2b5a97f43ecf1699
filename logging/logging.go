// Package logging sets up the log file of the plugin. Initialization is an
// explicit call, so constructing a plugin instance has no logging side
// effects.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
)

// DefaultFileName is the name of the log file created in the log directory.
const DefaultFileName = "gainfx.log"

// DefaultDir returns the directory the plugin logs to: $HOME/tmp.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate home directory: %w", err)
	}
	return filepath.Join(home, "tmp"), nil
}

// The standard logger is process wide, and a host may load several plugin
// instances into one process, so the log file is shared and reference
// counted.
var shared struct {
	mu   sync.Mutex
	file *os.File
	refs int
}

// Init creates dir (if needed) and the log file in it, and redirects the
// standard logger there, timestamped in local time. If the log is already
// redirected by an earlier Init, the open file is shared and nothing is
// truncated. The returned closer releases this reference; the last one
// closes the file and restores logging to stderr. On error, the standard
// logger is left as it was.
func Init(dir, fileName string) (io.Closer, error) {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	if shared.refs > 0 {
		shared.refs++
		return &logFile{}, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, fileName))
	if err != nil {
		return nil, fmt.Errorf("cannot create log file: %w", err)
	}
	shared.file = f
	shared.refs = 1
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return &logFile{}, nil
}

type logFile struct {
	once sync.Once
}

func (l *logFile) Close() (err error) {
	l.once.Do(func() {
		shared.mu.Lock()
		defer shared.mu.Unlock()
		shared.refs--
		if shared.refs > 0 {
			return
		}
		log.SetOutput(os.Stderr)
		err = shared.file.Close()
		shared.file = nil
	})
	return err
}

// LogPanics logs a panic in progress, with the stack, and panics again. Use
// it deferred at the top of a goroutine:
//
//	defer logging.LogPanics()
func LogPanics() {
	if r := recover(); r != nil {
		log.Printf("panic: %v\n%s", r, debug.Stack())
		panic(r)
	}
}
