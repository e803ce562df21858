package filestore

import (
	"fmt"
	"io"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ActionLog is the audit trail collaborator: every mutating command appends
// one timestamped line. The file is size-rotated so a long-lived process
// cannot grow it without bound. Append failures are reported to the caller
// but must never fail the command that triggered them.
type ActionLog struct {
	mu sync.Mutex
	w  io.WriteCloser
}

// NewActionLog creates a rotating action log at path.
func NewActionLog(path string) *ActionLog {
	return &ActionLog{
		w: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		},
	}
}

// Record appends one audit line: timestamp | username | branch | action.
func (l *ActionLog) Record(username, branchID, action string) error {
	line := fmt.Sprintf("%s | %s | %s | %s\n",
		time.Now().UTC().Format(time.RFC3339), username, branchID, action)

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.w.Write([]byte(line)); err != nil {
		return fmt.Errorf("failed to append action log line: %w", err)
	}
	return nil
}

// Close releases the underlying file handle.
func (l *ActionLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Close()
}
