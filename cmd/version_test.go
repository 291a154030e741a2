package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	output := out.String()
	assert.Contains(t, output, "harness\t")
	assert.Contains(t, output, "targets\t ios-device, ios-simulator-32")
	assert.Contains(t, output, "xros-simulator")
}

func TestVersionCmd_RejectsArguments(t *testing.T) {
	cmd := newVersionCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}
