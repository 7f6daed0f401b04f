package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertScenario checks a trace against the scenario's expect or error
// clause.
func AssertScenario(t *testing.T, sc Scenario, tr *Trace) {
	t.Helper()

	switch {
	case sc.Expect != nil:
		require.Nil(t, tr.Error, "expected a result, got error %+v", tr.Error)
		require.NotNil(t, tr.Result, "trace has neither result nor error")
		assert.Equal(t, sc.Expect.Kind, tr.Result.Kind, "result kind")
		assert.Equal(t, sc.Expect.Canonical, tr.Result.Canonical, "canonical form")
	case sc.Error != nil:
		require.NotNil(t, tr.Error, "expected failure, got result %+v", tr.Result)
		assert.Equal(t, sc.Error.Stage, tr.Error.Stage, "failing stage")
		assert.Equal(t, sc.Error.Code, tr.Error.Code, "error code")
	default:
		t.Fatalf("scenario %q has neither expect nor error clause", sc.Name)
	}
}
