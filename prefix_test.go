package weblog

import (
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, time.March, 9, 14, 30, 5, 0, time.UTC)

func TestRenderPrefixPlain(t *testing.T) {
	out := renderPrefix("[level][time] ", INFO, testTime, false)
	require.Equal(t, "[INFO][2025-03-09T14:30:05] ", out)
}

func TestRenderPrefixSingleReplacement(t *testing.T) {
	// Only the first occurrence of each token is substituted.
	out := renderPrefix("[level][level][time][time]", ERROR, testTime, false)
	require.Equal(t, "[ERROR][level][2025-03-09T14:30:05][time]", out)
}

func TestRenderPrefixWithoutTokens(t *testing.T) {
	out := renderPrefix("plain prefix: ", CRITICAL, testTime, false)
	require.Equal(t, "plain prefix: ", out)
	require.NotContains(t, out, "CRITICAL")
}

func TestRenderPrefixColored(t *testing.T) {
	restore := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = restore }()

	out := renderPrefix("[level][time] ", WARNING, testTime, true)
	require.Contains(t, out, "\x1b[")
	require.Contains(t, out, "[WARNING]")
	require.Contains(t, out, "[2025-03-09T14:30:05]")
}

func TestRenderPrefixPlainHasNoEscapes(t *testing.T) {
	restore := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = restore }()

	out := renderPrefix("[level][time] ", WARNING, testTime, false)
	require.False(t, strings.Contains(out, "\x1b["))
}

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		status    int
		wantLevel Level
	}{
		{100, INFO},
		{200, INFO},
		{204, INFO},
		{301, INFO},
		{304, INFO},
		{400, INFO},
		{404, INFO},
		{499, INFO},
		{500, ERROR},
		{503, ERROR},
		{599, ERROR},
	}
	for _, tc := range cases {
		level, _ := classifyStatus(tc.status)
		require.Equal(t, tc.wantLevel, level, "status %d", tc.status)
	}
}

func TestClassifyStatusColors(t *testing.T) {
	restore := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = restore }()

	// 2xx keeps the terminal default color.
	_, colorize := classifyStatus(200)
	require.Nil(t, colorize)

	for _, status := range []int{101, 302, 404, 500} {
		_, colorize := classifyStatus(status)
		require.NotNil(t, colorize, "status %d", status)
		require.Contains(t, colorize("x"), "\x1b[", "status %d", status)
	}
}
