package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimizeCmd_Integers(t *testing.T) {
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"minimize", "--ones", "1,2,3", "--bits", "2"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "-1,1-\n", out.String())
}

func TestMinimizeCmd_EmptyInputErrors(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"minimize"})
	err := root.Execute()
	assert.Error(t, err)
}

func TestProfileCmd_ReportsCounters(t *testing.T) {
	root := newRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs([]string{"profile", "--ones", "1,2,3", "--bits", "2"})
	require.NoError(t, root.Execute())
	assert.Contains(t, errOut.String(), "cmp=")
}
