package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kit/pkg/i18n"
)

const yamlCatalog = `
de:
  kit/types:
    "Only a text is allowed.": "Nur ein Text ist erlaubt."
    "{{count}} file":
      one: "Eine Datei"
      other: "{{count}} Dateien"
`

const jsonCatalog = `{
  "de": {"kit/types": {"Only an array is allowed.": "Nur ein Array ist erlaubt."}},
  "fr": {"kit/types": {"Only a text is allowed.": "Seul un texte est permis."}}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileAdapter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yamlPath := writeFile(t, dir, "de.yaml", yamlCatalog)
	jsonPath := writeFile(t, dir, "all.json", jsonCatalog)
	emptyPath := writeFile(t, dir, "empty.yml", "")
	textPath := writeFile(t, dir, "notes.txt", "hello")

	t.Run("yaml by extension", func(t *testing.T) {
		t.Parallel()
		c, err := i18n.NewFileAdapter(nil, yamlPath).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Nur ein Text ist erlaubt.", c["de"]["kit/types"]["Only a text is allowed."])
		assert.Equal(t, map[string]any{"one": "Eine Datei", "other": "{{count}} Dateien"},
			c["de"]["kit/types"]["{{count}} file"])
	})

	t.Run("explicit parser", func(t *testing.T) {
		t.Parallel()
		c, err := i18n.NewFileAdapter(i18n.NewJSONParser(), jsonPath).Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, c, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFileAdapter(nil, filepath.Join(dir, "missing.yaml")).Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFileAdapter(nil, emptyPath).Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFileAdapter(nil, textPath).Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrUnsupportedFile)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFileAdapter(nil, yamlPath).Load(ctx)
		require.ErrorIs(t, err, i18n.ErrLoadingFileCancelled)
	})
}

func TestDirectoryAdapter(t *testing.T) {
	t.Parallel()

	t.Run("merges files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, "de.yaml", yamlCatalog)
		writeFile(t, dir, "all.json", jsonCatalog)
		writeFile(t, dir, "README.md", "# translations")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o700))

		c, err := i18n.NewDirectoryAdapter(nil, dir).Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, c["de"]["kit/types"], 3)
		assert.Contains(t, c, "fr")
	})

	t.Run("parser filters files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, "de.yaml", yamlCatalog)
		writeFile(t, dir, "all.json", jsonCatalog)

		c, err := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), dir).Load(context.Background())
		require.NoError(t, err)
		assert.NotContains(t, c, "fr")
	})

	t.Run("invalid file fails the load", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, "bad.json", "{not json")
		_, err := i18n.NewDirectoryAdapter(nil, dir).Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToParseFile)
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("no files", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewDirectoryAdapter(nil, t.TempDir()).Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("not a directory", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, t.TempDir(), "de.yaml", yamlCatalog)
		_, err := i18n.NewDirectoryAdapter(nil, path).Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToReadDirectory)
	})
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"translations/de.yaml":  {Data: []byte(yamlCatalog)},
		"translations/all.json": {Data: []byte(jsonCatalog)},
		"other/skip.yaml":       {Data: []byte("broken: [")},
	}

	c, err := i18n.NewFSAdapter(nil, fsys, "translations").Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, c, 2)

	_, err = i18n.NewFSAdapter(nil, fsys, "other").Load(context.Background())
	require.ErrorIs(t, err, i18n.ErrFailedToParseYAML)

	_, err = i18n.NewFSAdapter(nil, nil, "").Load(context.Background())
	require.ErrorIs(t, err, i18n.ErrFailedToReadDirectory)

	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(nil, fsys, "translations"))
	require.NoError(t, err)
	assert.Equal(t, "Nur ein Array ist erlaubt.", tr.Localize("de", "kit/types", "Only an array is allowed."))
}

func TestNewPathAdapter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "de.yaml", yamlCatalog)

	a, err := i18n.NewPathAdapter(dir)
	require.NoError(t, err)
	assert.IsType(t, &i18n.DirectoryAdapter{}, a)

	a, err = i18n.NewPathAdapter(path)
	require.NoError(t, err)
	assert.IsType(t, &i18n.FileAdapter{}, a)

	_, err = i18n.NewPathAdapter(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, i18n.ErrFailedToReadFile)
}
