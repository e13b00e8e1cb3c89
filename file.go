package weblog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// dailyFile appends plain-text lines to a date-named log file, swapping the
// underlying writer when the calendar date changes. Callers serialize all
// access through the Service's file mutex.
type dailyFile struct {
	dir        string
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
	compress   bool

	day string
	out *lumberjack.Logger
}

func newDailyFile(cfg *Config) *dailyFile {
	return &dailyFile{
		dir:        cfg.OutputDir,
		maxSizeMB:  cfg.FileMaxSizeMB,
		maxBackups: cfg.FileMaxBackups,
		maxAgeDays: cfg.FileMaxAgeDays,
		compress:   cfg.FileCompression,
	}
}

func (f *dailyFile) filename(day string) string {
	return filepath.Join(f.dir, day+logFileExt)
}

// probe verifies that the given day's file can be opened for appending.
// The handle is closed again immediately; the lumberjack writer reopens it
// lazily on first write.
func (f *dailyFile) probe(day string) error {
	fh, err := os.OpenFile(f.filename(day), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	return fh.Close()
}

// rotate swaps in a writer for the given day if the date rolled over. The
// old writer is closed before the new one is created; the swap happens even
// when closing fails, so a bad handle cannot wedge rotation.
func (f *dailyFile) rotate(day string) error {
	if f.out != nil && f.day == day {
		return nil
	}

	var closeErr error
	if f.out != nil {
		closeErr = f.out.Close()
	}

	f.out = &lumberjack.Logger{
		Filename:   f.filename(day),
		MaxSize:    f.maxSizeMB,
		MaxBackups: f.maxBackups,
		MaxAge:     f.maxAgeDays,
		Compress:   f.compress,
	}
	f.day = day

	return closeErr
}

func (f *dailyFile) write(line []byte) error {
	if f.out == nil {
		return fmt.Errorf("log file for day %s is not open", f.day)
	}
	_, err := f.out.Write(line)
	return err
}

// close releases the current writer. Safe to call multiple times.
func (f *dailyFile) close() error {
	if f.out == nil {
		return nil
	}
	err := f.out.Close()
	f.out = nil
	f.day = emptyString
	return err
}
