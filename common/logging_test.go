package common_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foxglove-labs/pdflex/common"
)

func TestDummyLoggerIsAlwaysLogLevel(t *testing.T) {
	var l common.DummyLogger
	require.True(t, l.IsLogLevel(common.LogLevelTrace))
	require.True(t, l.IsLogLevel(common.LogLevelError))
}

func TestWriterLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := common.NewWriterLogger(common.LogLevelWarning, &buf)

	l.Debug("should not appear")
	require.Empty(t, buf.String())

	l.Warning("should appear: %d", 7)
	require.Contains(t, buf.String(), "[WARNING]")
	require.Contains(t, buf.String(), "should appear: 7")
}

func TestSetLoggerInstallsGlobalLogger(t *testing.T) {
	defer common.SetLogger(common.DummyLogger{})

	var buf bytes.Buffer
	common.SetLogger(common.NewWriterLogger(common.LogLevelTrace, &buf))
	common.Log.Trace("hello %s", "world")

	require.Contains(t, buf.String(), "hello world")
}
