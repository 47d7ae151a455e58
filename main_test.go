package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saint0x/letsflow/pkg/log"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	cmd := newRootCmd(log.NewWriter(&logs, false))
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	err := cmd.Execute()
	return out.String(), logs.String(), err
}

func TestConditionalsCommand(t *testing.T) {
	t.Setenv("DEBUG", "")
	t.Setenv("LETSFLOW_SPIN_BUDGET", "")

	out, _, err := execute(t, "conditionals")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Number is positive\n"))
	assert.True(t, strings.HasSuffix(out, "Wednesday\n"))

	alias, _, err := execute(t, "ifs")
	require.NoError(t, err)
	assert.Equal(t, out, alias)
}

func TestLoopsCommand(t *testing.T) {
	t.Setenv("LETSFLOW_SPIN_BUDGET", "1ms")

	out, _, err := execute(t, "loops")
	require.NoError(t, err)
	assert.Contains(t, out, "Count: 5\n")
	assert.Regexp(t, `\nCount reached: [1-9][0-9]*\n`, out)
	assert.True(t, strings.HasSuffix(out, "i = 5, j = 6\n"))
}

func TestAllCommand(t *testing.T) {
	t.Setenv("LETSFLOW_SPIN_BUDGET", "1ms")

	out, _, err := execute(t, "all")
	require.NoError(t, err)
	assert.Contains(t, out, "i = 5, j = 6\n\n--- Next Example ---\n\nNumber is positive\n")
	assert.Equal(t, 12, strings.Count(out, "--- Next Example ---"))
}

func TestDebugFlag(t *testing.T) {
	t.Setenv("DEBUG", "")
	t.Setenv("LETSFLOW_SPIN_BUDGET", "")

	_, logs, err := execute(t, "--debug", "conditionals")
	require.NoError(t, err)
	assert.Contains(t, logs, "IfStatements: example 7/7: switch")
}

func TestInvalidEnvironment(t *testing.T) {
	t.Setenv("LETSFLOW_SPIN_BUDGET", "forever")

	out, _, err := execute(t, "loops")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LETSFLOW_SPIN_BUDGET")
	assert.Empty(t, out)
}

func TestRejectsArgs(t *testing.T) {
	_, _, err := execute(t, "loops", "extra")
	assert.Error(t, err)
}
