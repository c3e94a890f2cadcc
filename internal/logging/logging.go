package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Setup configures slog to write JSONL to logFile, and also to mirror when
// mirror is non-nil. Lecture narration goes to stdout, so logs stay off the
// console unless asked for. Returns a logger and a cleanup function to close
// the file handle.
func Setup(logFile string, level slog.Level, mirror io.Writer) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = f
	if mirror != nil {
		w = io.MultiWriter(mirror, f)
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With("app", "golectures")

	cleanup := func() {
		_ = f.Close()
	}

	return logger, cleanup, nil
}

// Discard returns a logger that drops everything, for tests and library callers
// that have no logger of their own.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
