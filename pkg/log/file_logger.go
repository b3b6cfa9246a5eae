package log

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Extension is the file extension of load event logs.
const Extension = ".vlog"

// ErrExtension is returned by NewFileLogger for a path without Extension.
var ErrExtension = errors.New("event log must have " + Extension + " extension")

// FileLogger appends load events to a .vlog file in CBOR format. Events
// without a timestamp are stamped when written.
type FileLogger struct {
	mu      sync.Mutex
	file    *os.File
	encoder *cbor.Encoder
	closed  bool
	now     func() time.Time
}

// NewFileLogger opens path for appending, creating it if needed.
func NewFileLogger(path string) (*FileLogger, error) {
	if filepath.Ext(path) != Extension {
		return nil, fmt.Errorf("%w: %s", ErrExtension, path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening event log: %w", err)
	}
	return &FileLogger{file: f, encoder: newEncoder(f), now: time.Now}, nil
}

// Log appends an event. Encoding failures are dropped so that event capture
// never fails a load.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = l.now()
	}
	_ = l.encoder.Encode(event)
}

// Close closes the file. Later calls to Log and Close do nothing.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	return l.file.Close()
}

var _ Logger = (*FileLogger)(nil)
