package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"path/filepath"
)

// TranslationAdapter loads a catalog from some source.
type TranslationAdapter interface {
	Load(ctx context.Context) (Catalog, error)
}

// MapAdapter serves an in-memory catalog.
type MapAdapter struct {
	Data Catalog
}

// Load implements the TranslationAdapter interface
func (a *MapAdapter) Load(_ context.Context) (Catalog, error) {
	if a.Data == nil {
		return make(Catalog), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single catalog file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a FileAdapter. A nil parser is chosen from the file
// extension when loading.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface
func (a *FileAdapter) Load(ctx context.Context) (Catalog, error) {
	if a.path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrFailedToReadFile)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	dir, name := filepath.Split(a.path)
	if dir == "" {
		dir = "."
	}
	return loadFile(ctx, os.DirFS(dir), name, a.parser)
}

// DirectoryAdapter loads and merges every supported catalog file in a directory.
type DirectoryAdapter struct {
	parser Parser
	path   string
}

// NewDirectoryAdapter creates a DirectoryAdapter. With a nil parser JSON and YAML
// files are both loaded.
func NewDirectoryAdapter(parser Parser, path string) *DirectoryAdapter {
	return &DirectoryAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface
func (a *DirectoryAdapter) Load(ctx context.Context) (Catalog, error) {
	info, err := os.Stat(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrFailedToReadDirectory, a.path)
	}
	return loadDir(ctx, os.DirFS(a.path), ".", a.parser)
}

// FSAdapter loads catalog files from a directory of an fs.FS such as embed.FS.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter creates an FSAdapter reading dir of fsys.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// Load implements the TranslationAdapter interface
func (a *FSAdapter) Load(ctx context.Context) (Catalog, error) {
	if a.fsys == nil {
		return nil, fmt.Errorf("%w: nil file system", ErrFailedToReadDirectory)
	}
	return loadDir(ctx, a.fsys, a.dir, a.parser)
}

// NewPathAdapter returns a DirectoryAdapter when path is a directory and a
// FileAdapter otherwise. Parsers are chosen by file extension.
func NewPathAdapter(path string) (TranslationAdapter, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if info.IsDir() {
		return NewDirectoryAdapter(nil, path), nil
	}
	return NewFileAdapter(nil, path), nil
}

func loadDir(ctx context.Context, fsys fs.FS, dir string, parser Parser) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
	}
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(Catalog)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !supported(parser, entry.Name()) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
		}

		c, err := loadFile(ctx, fsys, path.Join(dir, entry.Name()), parser)
		if err != nil {
			return nil, err
		}
		merge(all, c)
		loaded++
	}
	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, dir)
	}
	return all, nil
}

func loadFile(ctx context.Context, fsys fs.FS, name string, parser Parser) (Catalog, error) {
	if parser == nil {
		p, err := NewParserForFile(name)
		if err != nil {
			return nil, err
		}
		parser = p
	}

	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %q is empty", ErrFailedToReadFile, name)
	}

	c, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w %q", ErrFailedToParseFile, name), err)
	}
	return c, nil
}

func supported(parser Parser, name string) bool {
	if parser != nil {
		return parser.SupportsFileExtension(filepath.Ext(name))
	}
	_, err := NewParserForFile(name)
	return err == nil
}

// merge copies src into dst. Later messages replace earlier ones within a domain.
func merge(dst, src Catalog) {
	for lang, domains := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]map[string]any, len(domains))
		}
		for domain, messages := range domains {
			if dst[lang][domain] == nil {
				dst[lang][domain] = make(map[string]any, len(messages))
			}
			maps.Copy(dst[lang][domain], messages)
		}
	}
}
