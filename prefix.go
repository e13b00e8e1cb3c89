package weblog

import (
	"strings"
	"time"

	"github.com/fatih/color"
)

// ColorFunc renders its arguments wrapped in ANSI color codes. Any
// color.New(...).SprintFunc() satisfies it.
type ColorFunc func(a ...interface{}) string

var (
	colorGray     ColorFunc = color.New(color.FgHiBlack).SprintFunc()
	colorWhite    ColorFunc = color.New(color.FgWhite).SprintFunc()
	colorCyan     ColorFunc = color.New(color.FgCyan).SprintFunc()
	colorYellow   ColorFunc = color.New(color.FgYellow).SprintFunc()
	colorRed      ColorFunc = color.New(color.FgRed).SprintFunc()
	colorHiRed    ColorFunc = color.New(color.FgHiRed).SprintFunc()
	colorHiGreen  ColorFunc = color.New(color.FgHiGreen).SprintFunc()
	colorHiYellow ColorFunc = color.New(color.FgHiYellow).SprintFunc()
)

// levelColor maps a level to the color of its [LEVEL] prefix tag.
func levelColor(level Level) ColorFunc {
	switch level {
	case DEBUG:
		return colorGray
	case INFO:
		return colorHiGreen
	case WARNING:
		return colorHiYellow
	case ERROR:
		return colorHiRed
	case CRITICAL:
		return colorRed
	default:
		return colorWhite
	}
}

// classifyStatus maps an HTTP status code to the level and body color of
// its request log line. 5xx responses log at ERROR, everything else at
// INFO. A nil ColorFunc leaves the body in the terminal's default color.
func classifyStatus(status int) (Level, ColorFunc) {
	switch {
	case status >= 500:
		return ERROR, colorHiRed
	case status >= 400:
		return INFO, colorYellow
	case status >= 200 && status < 300:
		return INFO, nil
	default: // 1xx, 3xx and anything out of range
		return INFO, colorGray
	}
}

// renderPrefix substitutes the first occurrence of the [level] and [time]
// tokens in format. Substitution is a single replace per token, not
// iterative; a format without tokens comes back untouched.
func renderPrefix(format string, level Level, ts time.Time, colored bool) string {
	levelTag := "[" + level.String() + "]"
	timeTag := "[" + ts.Format(timestampLayout) + "]"

	if colored {
		levelTag = levelColor(level)(levelTag)
		timeTag = colorCyan(timeTag)
	}

	out := strings.Replace(format, tokenLevel, levelTag, 1)
	out = strings.Replace(out, tokenTime, timeTag, 1)
	return out
}
