package seq_test

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-lodash-utils/seq"
)

func TestSetLogHandler(t *testing.T) {
	var buf bytes.Buffer
	seq.SetLogHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t.Cleanup(func() { seq.SetLogHandler(nil) })

	slices.Collect(seq.DropRightWhile([]string{"bYr", "abc", "BbAcd"}, containsA))

	out := buf.String()
	assert.Contains(t, out, "component=seq")
	assert.Contains(t, out, "keep=1")
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	var buf bytes.Buffer
	seq.SetLogHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	t.Cleanup(func() { seq.SetLogHandler(nil) })

	slices.Collect(seq.Difference([]int{1, 2}, []int{2}))
	assert.Empty(t, buf.String(), "debug records must not reach an info-level handler")
}
