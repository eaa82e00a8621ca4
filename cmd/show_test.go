package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunShow(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "math.test.ts")
	source := `describe('math', () => {
	it('adds', () => {});
	it.skip('subtracts', () => {});
});`
	require.NoError(t, os.WriteFile(file, []byte(source), 0o644))

	var buf bytes.Buffer
	require.NoError(t, RunShow(&buf, file))

	out := buf.String()
	assert.Contains(t, out, "math")
	assert.Contains(t, out, "adds")
	assert.Contains(t, out, "subtracts")
	assert.Contains(t, out, "typescript")
}

func TestRunShowMissingFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := RunShow(&buf, filepath.Join(t.TempDir(), "missing.test.ts"))
	assert.Error(t, err)
}
