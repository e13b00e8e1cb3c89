package weblog

// Logger is the leveled logging surface. It is implemented by *Service and
// by the nop logger that FromContext falls back to.
type Logger interface {
	Debug(parts ...interface{})
	Info(parts ...interface{})
	Warning(parts ...interface{})
	Error(parts ...interface{})
	Critical(parts ...interface{})

	// Log emits a line at the given level. The optional colorize function
	// is applied to the console rendering of the message body only.
	Log(level Level, colorize ColorFunc, parts ...interface{})
}

var _ Logger = (*Service)(nil)
