package parser

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"src/math.test.ts": &fstest.MapFile{
			Data: []byte(`describe('math', () => { it('adds', () => {}); });`),
		},
		"src/util.spec.js": &fstest.MapFile{
			Data: []byte(`it('works', () => {});`),
		},
		"src/__tests__/deep.ts": &fstest.MapFile{
			Data: []byte(`test('nested dir', () => {});`),
		},
		"src/main.ts": &fstest.MapFile{
			Data: []byte(`export const x = 1;`),
		},
		"node_modules/pkg/index.test.js": &fstest.MapFile{
			Data: []byte(`it('vendored', () => {});`),
		},
		"README.md": &fstest.MapFile{
			Data: []byte(`# readme`),
		},
	}

	result, err := ScanFS(context.Background(), fsys, "proj")
	require.NoError(t, err)

	assert.Equal(t, 3, result.Stats.FilesScanned)
	assert.Equal(t, 3, result.Stats.FilesParsed)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "proj", result.Inventory.RootPath)

	// Sorted by path regardless of parse completion order.
	paths := make([]string, 0, len(result.Inventory.Files))
	for _, f := range result.Inventory.Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"src/__tests__/deep.ts", "src/math.test.ts", "src/util.spec.js"}, paths)

	assert.Equal(t, 3, result.Inventory.CountTests())
	assert.Equal(t, 1, result.Inventory.CountSuites())
}

func TestScanFSCustomPatterns(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"e2e/login.e2e.ts": &fstest.MapFile{
			Data: []byte(`it('logs in', () => {});`),
		},
		"src/math.test.ts": &fstest.MapFile{
			Data: []byte(`it('adds', () => {});`),
		},
	}

	result, err := ScanFS(context.Background(), fsys, "proj", WithPatterns("**/*.e2e.ts"))
	require.NoError(t, err)

	require.Len(t, result.Inventory.Files, 1)
	assert.Equal(t, "e2e/login.e2e.ts", result.Inventory.Files[0].Path)
}

func TestScanFSMaxFileSize(t *testing.T) {
	t.Parallel()

	large := "describe('big', () => {});" + strings.Repeat("// padding\n", 100)
	fsys := fstest.MapFS{
		"big.test.ts":   &fstest.MapFile{Data: []byte(large)},
		"small.test.ts": &fstest.MapFile{Data: []byte(`it('x', () => {});`)},
	}

	result, err := ScanFS(context.Background(), fsys, "proj", WithMaxFileSize(64))
	require.NoError(t, err)

	require.Len(t, result.Inventory.Files, 1)
	assert.Equal(t, "small.test.ts", result.Inventory.Files[0].Path)
}

func TestScanFSExcludeDirs(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"src/a.test.ts":      &fstest.MapFile{Data: []byte(`it('kept', () => {});`)},
		"fixtures/b.test.ts": &fstest.MapFile{Data: []byte(`it('excluded', () => {});`)},
	}

	result, err := ScanFS(context.Background(), fsys, "proj", WithExcludeDirs("fixtures"))
	require.NoError(t, err)

	require.Len(t, result.Inventory.Files, 1)
	assert.Equal(t, "src/a.test.ts", result.Inventory.Files[0].Path)
}

func TestScanFSParseOptions(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"custom.test.ts": &fstest.MapFile{
			Data: []byte(`describeModel('User', () => { it('saves', () => {}); });`),
		},
	}

	result, err := ScanFS(context.Background(), fsys, "proj",
		WithParseOptions(WithExtraDescribeNames("describeModel")),
	)
	require.NoError(t, err)

	require.Len(t, result.Inventory.Files, 1)
	assert.Equal(t, 1, result.Inventory.CountSuites())
	assert.Equal(t, 1, result.Inventory.CountTests())
}

func TestScanFSEmptyTree(t *testing.T) {
	t.Parallel()

	result, err := ScanFS(context.Background(), fstest.MapFS{}, "proj")
	require.NoError(t, err)

	assert.Empty(t, result.Inventory.Files)
	assert.Zero(t, result.Stats.FilesScanned)
}

func TestScanFSCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fsys := fstest.MapFS{
		"a.test.ts": &fstest.MapFile{Data: []byte(`it('x', () => {});`)},
	}

	_, err := ScanFS(ctx, fsys, "proj")
	assert.ErrorIs(t, err, ErrScanCancelled)
}
