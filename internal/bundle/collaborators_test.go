package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileGlobber_SortedMatches(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for _, name := range []string{"b.ts", "a.ts", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	matches, err := FileGlobber{}.Glob(filepath.Join(dir, "*.ts"))
	require.NoError(t, err)

	want := []string{filepath.Join(dir, "a.ts"), filepath.Join(dir, "b.ts")}
	assert.Equal(t, want, matches)
}

func TestFileGlobber_NoMatchesIsEmptyNotError(t *testing.T) {
	t.Parallel()
	matches, err := FileGlobber{}.Glob(filepath.Join(t.TempDir(), "*.element.ts"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFileGlobber_BadPattern(t *testing.T) {
	t.Parallel()
	_, err := FileGlobber{}.Glob("[")
	assert.Error(t, err)
}
