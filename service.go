package weblog

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Service is the request logger. Construct with New, then call Initialize
// before use. All methods are safe for concurrent use.
type Service struct {
	cfg         Config
	outputLevel Level

	initialized atomic.Bool
	fileOutput  atomic.Bool

	fileMu sync.Mutex
	file   *dailyFile

	// now is swapped out in tests to drive date rollover.
	now func() time.Time
}

// sprintPool is a buffer pool for joining variadic message parts.
var sprintPool = sync.Pool{
	New: func() interface{} {
		return new(strings.Builder)
	},
}

func New(cfg Config) *Service {
	return &Service{cfg: cfg, now: time.Now}
}

// Initialize validates the configuration and, when file output is enabled,
// prepares the output directory and today's log file. A file that cannot
// be opened disables file output for the life of the instance and emits a
// console warning; it is not an error.
func (s *Service) Initialize() error {
	if err := validateConfig(&s.cfg); err != nil {
		return err
	}
	s.cfg.applyDefaults()

	level, err := ParseLevel(s.cfg.OutputLevel)
	if err != nil {
		return fmt.Errorf("%s: %w", errMsgConfigInvalid, err)
	}
	s.outputLevel = level

	s.initialized.Store(true)

	if s.cfg.Output {
		s.initializeFileOutput()
	}
	return nil
}

func (s *Service) initializeFileOutput() {
	if err := os.MkdirAll(s.cfg.OutputDir, os.ModePerm); err != nil {
		s.Warning("file output disabled:", err)
		return
	}

	file := newDailyFile(&s.cfg)
	if err := file.probe(s.now().Format(dateLayout)); err != nil {
		s.Warning("file output disabled:", err)
		return
	}

	s.fileMu.Lock()
	s.file = file
	s.fileMu.Unlock()
	s.fileOutput.Store(true)
}

// Close flushes and releases the current log file. Safe to call multiple
// times.
func (s *Service) Close() error {
	if !s.fileOutput.Load() {
		return nil
	}
	s.fileMu.Lock()
	defer s.fileMu.Unlock()
	return s.file.close()
}

// Debug logs at DEBUG level. Console output is suppressed unless the
// service runs in development mode.
func (s *Service) Debug(parts ...interface{}) {
	s.Log(DEBUG, nil, parts...)
}

// Info logs at INFO level.
func (s *Service) Info(parts ...interface{}) {
	s.Log(INFO, nil, parts...)
}

// Warning logs at WARNING level.
func (s *Service) Warning(parts ...interface{}) {
	s.Log(WARNING, nil, parts...)
}

// Error logs at ERROR level.
func (s *Service) Error(parts ...interface{}) {
	s.Log(ERROR, nil, parts...)
}

// Critical logs at CRITICAL level.
func (s *Service) Critical(parts ...interface{}) {
	s.Log(CRITICAL, nil, parts...)
}

// Log joins parts with single spaces and routes the line to the console
// and, when enabled and at or above the configured threshold, to the daily
// log file. The optional colorize function is applied to the console body
// only; the file never receives color codes.
func (s *Service) Log(level Level, colorize ColorFunc, parts ...interface{}) {
	if !s.initialized.Load() {
		return
	}

	msg := joinParts(parts...)
	ts := s.now()

	if level != DEBUG || s.cfg.Development {
		body := msg
		if colorize != nil {
			body = colorize(msg)
		}
		fmt.Fprintln(s.cfg.Console, renderPrefix(s.cfg.PrefixFormat, level, ts, true)+body)
	}

	if s.fileOutput.Load() && level >= s.outputLevel {
		s.writeFile(level, ts, msg)
	}
}

func (s *Service) writeFile(level Level, ts time.Time, msg string) {
	line := renderPrefix(s.cfg.PrefixFormat, level, ts, false) + msg + "\n"

	s.fileMu.Lock()
	defer s.fileMu.Unlock()

	if err := s.file.rotate(ts.Format(dateLayout)); err != nil {
		s.reportError(fmt.Errorf("rotating log file: %w", err))
	}
	if err := s.file.write([]byte(line)); err != nil {
		s.reportError(fmt.Errorf("writing log file: %w", err))
	}
}

func (s *Service) reportError(err error) {
	if s.cfg.OnError != nil {
		s.cfg.OnError(err)
	}
}

func joinParts(parts ...interface{}) string {
	buf := sprintPool.Get().(*strings.Builder)
	buf.Reset()
	defer sprintPool.Put(buf)

	for i, part := range parts {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprint(buf, part)
	}
	return buf.String()
}
