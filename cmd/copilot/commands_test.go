// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// Tests for CLI command wiring

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasExpectedSubcommands(t *testing.T) {
	expected := []string{"submit", "status", "review", "list", "health", "ingest"}
	for _, name := range expected {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "subcommand %q not registered", name)
	}
}

func TestReadChallengeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "challenge.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Cut flaring on platform A \n"), 0o644))

	got, err := readChallengeFile("@" + path)
	require.NoError(t, err)
	assert.Equal(t, "Cut flaring on platform A", got)
}

func TestReadChallengeFile_Missing(t *testing.T) {
	_, err := readChallengeFile("@/no/such/file.txt")
	assert.Error(t, err)
}
