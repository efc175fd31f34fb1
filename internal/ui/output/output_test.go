package output_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/ui/output"
)

func TestSummary(t *testing.T) {
	buf := &bytes.Buffer{}
	p := output.New(buf)

	p.Summary(&domain.ReconcileResult{
		Installed: []string{"acme/app"},
		Updated:   []string{"core/runtime"},
		Removed:   []string{"old/skill"},
		Unchanged: []string{"acme/cli"},
		Warnings:  []string{"Skipping unavailable skill ghost/skill"},
	})

	out := buf.String()
	assert.Contains(t, out, "Installed acme/app")
	assert.Contains(t, out, "Updated core/runtime")
	assert.Contains(t, out, "Removed old/skill")
	assert.Contains(t, out, "Unchanged acme/cli")
	assert.Contains(t, out, "ghost/skill")
	assert.NotContains(t, out, "Nothing to do")
}

func TestSummary_NothingToDo(t *testing.T) {
	buf := &bytes.Buffer{}
	p := output.New(buf)

	p.Summary(&domain.ReconcileResult{Unchanged: []string{"acme/app"}})
	assert.Contains(t, buf.String(), "Nothing to do")
}

func TestKeyValue(t *testing.T) {
	buf := &bytes.Buffer{}
	output.New(buf).KeyValue("registry", "https://api.skilldock.io")
	assert.Contains(t, buf.String(), "registry")
	assert.Contains(t, buf.String(), "https://api.skilldock.io")
}
