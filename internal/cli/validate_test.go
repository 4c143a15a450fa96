package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSourceFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.sfta")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const validSource = `Event: A
- probability: 0.1
Gate: G
- type: OR
- inputs: A
`

func TestValidateValidTree(t *testing.T) {
	path := writeSourceFile(t, validSource)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "valid: 1 event(s), 1 gate(s)")
}

func TestValidateValidTreeJSON(t *testing.T) {
	path := writeSourceFile(t, validSource)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestValidateReferenceError(t *testing.T) {
	path := writeSourceFile(t, `Event: A
- probability: 0.1
Gate: G
- type: AND
- inputs: A, MISSING
`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "ReferenceError")
}

func TestValidateMissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nonexistent.sfta")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}
