package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}
