package target

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/concrete-theme/concrete/internal/logger"
	"github.com/concrete-theme/concrete/internal/palette"
	"github.com/concrete-theme/concrete/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplate = `
name: "Concrete"
dark: true
ui:
  "*":
    background: "$neutral.150"
    foreground: "$neutral.840"
    errorForeground: "$semantic.error"
    focusedBorderColor: accentColor
`

func testTarget(t *testing.T) *Target {
	t.Helper()
	tpl, err := theme.ParseTemplate("intellij", []byte(testTemplate))
	require.NoError(t, err)

	return &Target{
		Name: "intellij",
		Templates: fstest.MapFS{
			"plugin.xml": &fstest.MapFile{Data: []byte("<idea-plugin/>\n")},
		},
		Theme:     tpl,
		ThemeFile: DefaultThemeFile,
	}
}

func threeColors() *palette.Node {
	return palette.Group().
		MustSet("neutral", palette.Group().
			MustSet("150", palette.Leaf("#111")).
			MustSet("840", palette.Leaf("#eee"))).
		MustSet("semantic", palette.Group().
			MustSet("error", palette.Leaf("#f00")))
}

func TestPublishEndToEnd(t *testing.T) {
	out := t.TempDir()
	tgt := testTarget(t)
	colors := threeColors()

	res, err := Publish(tgt, colors, out, nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(out, "intellij"), res.OutputDir)
	assert.Equal(t, 1, res.FilesCopied)

	plugin, err := os.ReadFile(filepath.Join(out, "intellij", "plugin.xml"))
	require.NoError(t, err)
	assert.Equal(t, "<idea-plugin/>\n", string(plugin))

	info, err := os.Stat(filepath.Join(out, "intellij", "theme"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	themePath := filepath.Join(out, "intellij", "theme", "concrete.theme.json")
	assert.Equal(t, themePath, res.ThemePath)
	written, err := os.ReadFile(themePath)
	require.NoError(t, err)

	doc, err := theme.Build(tgt.Theme, colors)
	require.NoError(t, err)
	expected, err := theme.Encode(doc)
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(written))

	var parsed, want map[string]any
	require.NoError(t, json.Unmarshal(written, &parsed))
	require.NoError(t, json.Unmarshal(expected, &want))
	assert.Equal(t, want, parsed)

	ui := parsed["ui"].(map[string]any)["*"].(map[string]any)
	assert.Equal(t, "#111", ui["background"])
	assert.Equal(t, "accentColor", ui["focusedBorderColor"])
}

func TestPublishOverwritesPreviousRun(t *testing.T) {
	out := t.TempDir()
	tgt := testTarget(t)

	stale := filepath.Join(out, "intellij", "plugin.xml")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
	require.NoError(t, os.WriteFile(stale, []byte("old and much longer content"), 0644))

	themePath := filepath.Join(out, "intellij", "theme", "concrete.theme.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(themePath), 0755))
	require.NoError(t, os.WriteFile(themePath, []byte(`{"stale": true}`), 0644))

	_, err := Publish(tgt, threeColors(), out, nil)
	require.NoError(t, err)

	plugin, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.Equal(t, "<idea-plugin/>\n", string(plugin))

	written, err := os.ReadFile(themePath)
	require.NoError(t, err)
	assert.NotContains(t, string(written), "stale")
}

func TestPublishMissingFieldWritesNothing(t *testing.T) {
	out := t.TempDir()
	colors := palette.Group().
		MustSet("neutral", palette.Group().
			MustSet("150", palette.Leaf("#111")).
			MustSet("840", palette.Leaf("#eee")))

	res, err := Publish(testTarget(t), colors, out, nil)
	assert.Nil(t, res)

	var missing *palette.MissingFieldError
	require.True(t, errors.As(err, &missing), "expected MissingFieldError, got %v", err)
	assert.Equal(t, "semantic.error", missing.Path)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries, "no output expected after a missing field")
}

func TestPublishUnwritableParent(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := Publish(testTarget(t), threeColors(), blocker, nil)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr), "expected IOError, got %v", err)
	assert.Equal(t, "mkdir", ioErr.Op)
	assert.Equal(t, filepath.Join(blocker, "intellij"), ioErr.Path)
}

func TestPublishLogs(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New()
	log.SetOutput(buf)
	log.SetLevel(logger.LevelDebug)

	_, err := Publish(testTarget(t), threeColors(), t.TempDir(), log)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "target=intellij")
	assert.Contains(t, buf.String(), "copied 1 template files")
	assert.Contains(t, buf.String(), "concrete.theme.json")
}

func TestPublishAllStopsAtFirstFailure(t *testing.T) {
	out := t.TempDir()

	broken := testTarget(t)
	broken.Name = "broken"
	broken.Templates = fstest.MapFS{"dir/file.txt": &fstest.MapFile{Data: []byte("x")}}
	tpl, err := theme.ParseTemplate("broken", []byte(`a: "$missing.color"`))
	require.NoError(t, err)
	broken.Theme = tpl

	after := testTarget(t)
	after.Name = "after"

	results, err := PublishAll([]*Target{testTarget(t), broken, after}, threeColors(), out, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish broken")
	assert.Len(t, results, 1)

	_, err = os.Stat(filepath.Join(out, "after"))
	assert.True(t, os.IsNotExist(err), "targets after the failure must not run")
}
