package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenarios(t *testing.T) {
	path := writeScenarioFile(t, `
- name: simple
  expr: 1+2
  expect:
    kind: number
    canonical: "3"
`)
	scenarios, err := LoadScenarios(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)
	assert.Equal(t, "simple", scenarios[0].Name)
	assert.Equal(t, "1+2", scenarios[0].Expr)
	require.NotNil(t, scenarios[0].Expect)
	assert.Equal(t, "3", scenarios[0].Expect.Canonical)
}

func TestLoadScenariosValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"missing name",
			"- expr: 1+2\n  expect: {kind: number, canonical: \"3\"}\n",
		},
		{
			"missing expr",
			"- name: x\n  expect: {kind: number, canonical: \"3\"}\n",
		},
		{
			"neither expect nor error",
			"- name: x\n  expr: 1+2\n",
		},
		{
			"both expect and error",
			"- name: x\n  expr: 1+2\n  expect: {kind: number, canonical: \"3\"}\n  error: {stage: eval, code: TYPE_MISMATCH}\n",
		},
		{
			"bad error stage",
			"- name: x\n  expr: 1+2\n  error: {stage: parse, code: TYPE_MISMATCH}\n",
		},
		{
			"duplicate names",
			"- name: x\n  expr: 1+2\n  expect: {kind: number, canonical: \"3\"}\n- name: x\n  expr: 2+2\n  expect: {kind: number, canonical: \"4\"}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenarios(writeScenarioFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadScenariosMissingFile(t *testing.T) {
	_, err := LoadScenarios(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
