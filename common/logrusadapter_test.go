package common_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/foxglove-labs/pdflex/common"
)

func TestLogrusLoggerIsLogLevel(t *testing.T) {
	base := logrus.New()
	base.SetLevel(logrus.DebugLevel)
	l := common.NewLogrusLogger(base)

	require.True(t, l.IsLogLevel(common.LogLevelDebug))
	require.False(t, l.IsLogLevel(common.LogLevelTrace))
}

func TestLogrusLoggerEmitsWithoutPanic(t *testing.T) {
	base := logrus.New()
	base.SetLevel(logrus.TraceLevel)
	l := common.NewLogrusLogger(base)

	require.NotPanics(t, func() {
		l.Error("boom %d", 1)
		l.Warning("warn %d", 2)
		l.Notice("notice %d", 3)
		l.Info("info %d", 4)
		l.Debug("debug %d", 5)
		l.Trace("trace %d", 6)
	})
}
