package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustReadConfig_writesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "jib.toml")

	c := mustReadConfig(path)
	require.FileExists(t, path)

	assert.Equal(t, "bash", c.Shell)
	assert.Equal(t, "", c.RecipeFile)
	assert.False(t, c.SortList)

	// The written default must parse the same on a second read.
	assert.Equal(t, c, mustReadConfig(path))
}

func TestMustReadConfig_custom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jib.toml")
	writeTestFile(t, path, "shell = \"zsh\"\nrecipe_file = \"Recipes\"\nsort_list = true\n")

	c := mustReadConfig(path)
	assert.Equal(t, "zsh", c.Shell)
	assert.Equal(t, "Recipes", c.RecipeFile)
	assert.True(t, c.SortList)
}
