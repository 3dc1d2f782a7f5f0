package main

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurre/awscmd/cmdlet"
)

func runCLI(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(""), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestListFiltersByPrefix(t *testing.T) {
	out, _, err := runCLI("list", "get-slk")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.NotEmpty(t, lines)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "Get-SLK"), line)
	}

	out, _, err = runCLI("list", "KINA")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 20)
}

func TestListAll(t *testing.T) {
	out, _, err := runCLI("list")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 51)
}

func TestHelpPrintsParameters(t *testing.T) {
	out, _, err := runCLI("help", "add-kinaapplicationinput")
	require.NoError(t, err)
	assert.Contains(t, out, "Add-KINAApplicationInput:")
	assert.Contains(t, out, "-ApplicationName")
	assert.Contains(t, out, "-CSVMappingParameters_RecordRowDelimiter")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"Get-Nothing"}},
		{"help without command", []string{"help"}},
		{"bad output format", []string{"-output", "xml", "list"}},
		{"resume without pipeline", []string{"-resume", "s3://b/k", "list"}},
		{"unknown global flag", []string{"-nope", "list"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(tt.args...)
			require.Error(t, err)
			assert.Equal(t, exitUsage, exitCode(err))
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitOK, exitCode(flag.ErrHelp))
	assert.Equal(t, exitUsage, exitCode(cmdlet.ErrUnionConflict))
	assert.Equal(t, exitFailed, exitCode(&cmdlet.InvocationError{Command: "Get-SLKDataLake", Err: errors.New("denied")}))
	assert.Equal(t, exitFailed, exitCode(errRecordsFailed))
}
