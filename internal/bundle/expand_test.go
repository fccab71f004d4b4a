package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalyst/elements-build/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Build: &config.BuildConfig{
			Tools: map[string]interface{}{"rollup": map[string]interface{}{"treeshake": true}},
		},
		Dist: &config.DistConfig{Path: "dist"},
	}
}

func TestExpand_OneDescriptorPerEntry(t *testing.T) {
	t.Parallel()
	expander := Expander{ProjectDir: t.TempDir()}
	cfg := testConfig()

	descriptors, err := expander.Expand(cfg, []string{"src/a.ts", "src/b.ts"}, FormatESM)
	require.NoError(t, err)
	require.Len(t, descriptors, 2)

	first := descriptors[0]
	assert.Equal(t, "src/a.ts", first.Entry)
	assert.Equal(t, "dist", first.OutDir)
	assert.Equal(t, "[basename].mjs", first.OutPattern)
	assert.Equal(t, "common/[hash].mjs", first.ChunkPattern)
	assert.Equal(t, FormatESM, first.Format)
	assert.Equal(t, cfg.Build.Tools, first.ToolOptions)

	assert.Equal(t, "src/b.ts", descriptors[1].Entry)
}

func TestExpand_CJSNaming(t *testing.T) {
	t.Parallel()
	expander := Expander{ProjectDir: t.TempDir()}

	descriptors, err := expander.Expand(testConfig(), []string{"src/a.ts"}, FormatCJS)
	require.NoError(t, err)
	require.Len(t, descriptors, 1)

	assert.Equal(t, "[basename].js", descriptors[0].OutPattern)
	assert.Equal(t, "common/[hash].js", descriptors[0].ChunkPattern)
}

func TestExpand_EmptyEntriesIsValid(t *testing.T) {
	t.Parallel()
	expander := Expander{ProjectDir: t.TempDir()}

	descriptors, err := expander.Expand(testConfig(), nil, FormatESM)
	require.NoError(t, err)
	assert.Empty(t, descriptors)
}

func TestExpand_MissingDistIsInvariantViolation(t *testing.T) {
	t.Parallel()
	expander := Expander{ProjectDir: t.TempDir()}

	_, err := expander.Expand(&config.Config{}, []string{"src/a.ts"}, FormatESM)
	require.Error(t, err)
}

func TestExpandInto_UsesExplicitOutDir(t *testing.T) {
	t.Parallel()
	expander := Expander{ProjectDir: t.TempDir()}

	descriptors, err := expander.ExpandInto(testConfig(), "docs", []string{"demos/index.html"}, FormatESM)
	require.NoError(t, err)
	require.Len(t, descriptors, 1)
	assert.Equal(t, "docs", descriptors[0].OutDir)
}

func TestDescriptor_OutName(t *testing.T) {
	t.Parallel()
	d := Descriptor{Entry: "src/my-element.ts", OutPattern: "[basename].mjs"}
	assert.Equal(t, "my-element.mjs", d.OutName())
}

func TestFormat_Extension(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "mjs", FormatESM.Extension())
	assert.Equal(t, "js", FormatCJS.Extension())
}
