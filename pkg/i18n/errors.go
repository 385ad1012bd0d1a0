package i18n

import "errors"

var (
	// ErrNilAdapter is returned by NewTranslator without an adapter.
	ErrNilAdapter = errors.New("translation adapter is nil")

	// ErrInvalidCatalog is returned for catalogs that do not follow the
	// language, domain, message layout.
	ErrInvalidCatalog = errors.New("invalid translation catalog")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading translation file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrUnsupportedFile      = errors.New("unsupported translation file format")

	// Directory operations
	ErrFailedToReadDirectory     = errors.New("failed to read translation directory")
	ErrLoadingDirectoryCancelled = errors.New("loading from directory cancelled")
	ErrNoTranslationFiles        = errors.New("no translation files found")
)
