package cliutil_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zdcount/zdcount/cliutil"
)

func TestDefaultLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := cliutil.NewDefaultLogger(cliutil.LevelWarn, &buf)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")

	out := buf.String()
	require.NotContains(t, out, "debug message")
	require.NotContains(t, out, "info message")
	require.Contains(t, out, "warn message")
	require.True(t, strings.Contains(out, "[WARN]"))
}

func TestDefaultLogger_WithField(t *testing.T) {
	var buf bytes.Buffer
	log := cliutil.NewDefaultLogger(cliutil.LevelInfo, &buf)
	log.WithField("partition", 3).Info("building")

	require.Contains(t, buf.String(), "partition=3")
}

func TestNullLogger_DiscardsEverything(t *testing.T) {
	var log cliutil.Logger = cliutil.NullLogger{}
	log.Info("should not panic")
	log.WithField("k", "v").Warn("still fine")
}
