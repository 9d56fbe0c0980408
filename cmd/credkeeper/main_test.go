package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credential-keeper/internal/harness"
)

func TestSelftestPassesSilently(t *testing.T) {
	var out bytes.Buffer
	selftestCmd.SetOut(&out)
	t.Cleanup(func() { selftestCmd.SetOut(nil) })

	require.NoError(t, runSelftest(selftestCmd, nil))
	assert.Empty(t, out.String())
}

func TestSelftestReportsFailures(t *testing.T) {
	saved := harness.Suites
	t.Cleanup(func() { harness.Suites = saved })
	harness.Suites = []harness.Suite{
		func(r *harness.Recorder) {
			r.Equal("always wrong", 1, 2)
			r.True("always right", true)
		},
	}

	var out bytes.Buffer
	selftestCmd.SetOut(&out)
	t.Cleanup(func() { selftestCmd.SetOut(nil) })

	err := runSelftest(selftestCmd, nil)
	require.Error(t, err)

	var failed checksFailedError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, 1, failed.failures)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "FAIL [always wrong]: expected 2, got 1", lines[0])
}

func TestChecksFailedError(t *testing.T) {
	assert.EqualError(t, checksFailedError{failures: 2}, "2 check(s) failed")
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger, err = newLogger("debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	_, err = newLogger("loud")
	assert.Error(t, err)
}
