package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skilldock.io/skilldock/internal/adapters/logger"
	"go.skilldock.io/skilldock/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestInfoWarn(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	l.Info("resolving dependency graph")
	l.Warn("registry responded slowly")

	out := buf.String()
	assert.Contains(t, out, "resolving dependency graph")
	assert.Contains(t, out, "registry responded slowly")
}

func TestError_RendersCauseChain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	cause := errors.New("connection refused")
	err := zerr.Wrap(cause, domain.ErrRegistryRequestFailed.Error())
	l.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: "+domain.ErrRegistryRequestFailed.Error())
	assert.Contains(t, out, "caused by: connection refused")
}

func TestError_NilIsNoop(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestJSONMode(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	l.SetJSON(true)

	l.Info("installed skill")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "installed skill", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}

func TestJSONMode_Error(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	l.SetJSON(true)

	l.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "boom", record["error"])
}
