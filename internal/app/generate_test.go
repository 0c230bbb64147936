package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/glyphgen/internal/domain/manifest"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "iconfont.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testConfig(t *testing.T, manifestJSON string) Config {
	cfg := DefaultConfig()
	cfg.Input = writeManifest(t, manifestJSON)
	cfg.Output = filepath.Join(t.TempDir(), "lib", "generated", "icon_font.dart")
	return cfg
}

func TestRun_WritesOutput(t *testing.T) {
	cfg := testConfig(t, `[{"font_class":"home","unicode_decimal":58880},{"font_class":"user-circle","unicode_decimal":58881}]`)

	res, err := Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.Output, res.Written)
	require.Len(t, res.Icons, 2)

	// Parent directories are created on demand.
	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "static const IconData home = IconData(0xe600, fontFamily: fontFamily);")
	assert.Contains(t, string(data), "static const IconData userCircle = IconData(0xe601, fontFamily: fontFamily);")
}

func TestRun_OverwritesExistingOutput(t *testing.T) {
	cfg := testConfig(t, `[{"font_class":"home","unicode_decimal":58880}]`)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.Output), 0o755))
	require.NoError(t, os.WriteFile(cfg.Output, []byte("stale"), 0o644))

	_, err := Run(cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestRun_MissingInput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = filepath.Join(t.TempDir(), "absent.json")
	cfg.Output = filepath.Join(t.TempDir(), "out.dart")

	res, err := Run(cfg)
	require.NoError(t, err)
	assert.True(t, res.MissingInput)
	assert.NoFileExists(t, cfg.Output)
}

func TestRun_EmptyManifestWritesNothing(t *testing.T) {
	cfg := testConfig(t, `[]`)

	res, err := Run(cfg)
	require.NoError(t, err)
	assert.True(t, res.Empty)
	assert.NoFileExists(t, cfg.Output)
}

func TestRun_AllEntriesSkippedWritesNothing(t *testing.T) {
	cfg := testConfig(t, `[{"unicode_decimal":1},{"font_class":"x"}]`)

	res, err := Run(cfg)
	require.NoError(t, err)
	assert.True(t, res.Empty)
	assert.NoFileExists(t, cfg.Output)
}

func TestRun_SchemaErrorWritesNothing(t *testing.T) {
	cfg := testConfig(t, `{"foo":1}`)

	_, err := Run(cfg)
	var schemaErr *manifest.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.NoFileExists(t, cfg.Output)
}

func TestRender_ResolvesCollisions(t *testing.T) {
	cfg := testConfig(t, `[
		{"font_class":"icon-a","code":1},
		{"font_class":"icon_a","code":2},
		{"font_class":"Icon A","code":3}
	]`)

	res, err := Render(cfg)
	require.NoError(t, err)
	require.Len(t, res.Icons, 3)
	assert.Equal(t, "icon-a", res.Icons["iconA"].Label)
	assert.Equal(t, "icon_a", res.Icons["iconA2"].Label)
	assert.Equal(t, "Icon A", res.Icons["iconA3"].Label)
}

func TestRender_HelpersInSource(t *testing.T) {
	cfg := testConfig(t, `[{"font_class":"home","unicode_decimal":58880}]`)
	cfg.Helpers = true

	res, err := Render(cfg)
	require.NoError(t, err)
	assert.Contains(t, res.Source, "static IconData? byName(String name) {")
	assert.Contains(t, res.Source, "case 'home':")
}
