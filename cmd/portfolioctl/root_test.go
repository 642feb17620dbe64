package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, path := range [][]string{{"migrate"}, {"admin", "create"}, {"seed"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestAdminCreate_RequiresFlags(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"admin", "create", "--email", "me@example.com"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}

func TestSeed_DryRunDoesNotTouchDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `
categories:
  - name: Backend
skills:
  - name: Go
    level: 90
    category: backend
projects:
  - title: Portfolio
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs([]string{"seed", "--file", path, "--dry-run"})
	root.SetOut(&out)

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "категорий 1, навыков 1, проектов 1")
}

func TestSeed_RejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unknown: true\n"), 0o600))

	root := newRootCmd()
	root.SetArgs([]string{"seed", "--file", path, "--dry-run"})
	root.SetOut(&bytes.Buffer{})

	assert.Error(t, root.Execute())
}
