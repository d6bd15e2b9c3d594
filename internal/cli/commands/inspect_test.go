package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeInspect(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewInspectCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestInspectCommand_Table(t *testing.T) {
	out, err := executeInspect(t, "(0,0),(1,1)", "3.5,-2")
	require.NoError(t, err)

	assert.Contains(t, out, "(0, 0),(1, 1)")
	assert.Contains(t, out, "(3.5, -2)")
	assert.Contains(t, out, "Dimensions")
}

func TestInspectCommand_JSON(t *testing.T) {
	out, err := executeInspect(t, "--format", "json", "(1, 2)")
	require.NoError(t, err)

	var results []InspectResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)

	assert.Equal(t, "(1, 2)", results[0].Input)
	assert.Equal(t, 2, results[0].Dimensions)
	assert.True(t, results[0].Point)
	assert.Equal(t, "(1, 2)", results[0].Normalized)
}

func TestInspectCommand_PointDetection(t *testing.T) {
	out, err := executeInspect(t, "--format", "json", "(1, 2),(1, 3)")
	require.NoError(t, err)

	var results []InspectResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.False(t, results[0].Point)
}

func TestInspectCommand_InvalidInput(t *testing.T) {
	_, err := executeInspect(t, "not a cube")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a cube")
}

func TestInspectCommand_DimensionMismatch(t *testing.T) {
	_, err := executeInspect(t, "(0, 0),(1)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimensions do not match")
}

func TestInspectCommand_RequiresArgs(t *testing.T) {
	cmd := NewInspectCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(nil)

	assert.Error(t, cmd.Execute())
}
