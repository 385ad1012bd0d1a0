package i18n

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Catalog holds messages keyed by language, then domain, then source message.
// A message maps to its translation or to plural forms keyed by "zero", "one"
// and "other".
type Catalog map[string]map[string]map[string]any

// Parser decodes catalog files.
type Parser interface {
	// Parse decodes content into a catalog.
	Parse(ctx context.Context, content []byte) (Catalog, error)

	// SupportsFileExtension reports whether files with ext can be parsed.
	// The extension may include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns the parser matching the extension of filename.
func NewParserForFile(filename string) (Parser, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser(), nil
	case "yaml", "yml":
		return NewYAMLParser(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, filename)
}

// decodeCatalog converts a generic document into a catalog, validating its layout.
func decodeCatalog(data map[string]any) (Catalog, error) {
	out := make(Catalog, len(data))
	for lang, v := range data {
		domains, ok := v.(map[string]any)
		if lang == "" || !ok {
			return nil, fmt.Errorf("%w: language %q must map domains to messages", ErrInvalidCatalog, lang)
		}
		out[lang] = make(map[string]map[string]any, len(domains))
		for domain, dv := range domains {
			messages, ok := dv.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: domain %q of %q must map messages to translations", ErrInvalidCatalog, domain, lang)
			}
			for msg, tv := range messages {
				if err := checkTranslation(tv); err != nil {
					return nil, fmt.Errorf("%w: %q in %s/%s: %w", ErrInvalidCatalog, msg, lang, domain, err)
				}
			}
			out[lang][domain] = messages
		}
	}
	return out, nil
}

func checkTranslation(v any) error {
	switch t := v.(type) {
	case string:
		return nil
	case map[string]any:
		if len(t) == 0 {
			return fmt.Errorf("no plural forms")
		}
		for form, s := range t {
			switch form {
			case "zero", "one", "other":
			default:
				return fmt.Errorf("unknown plural form %q", form)
			}
			if _, ok := s.(string); !ok {
				return fmt.Errorf("plural form %q must be a string", form)
			}
		}
		return nil
	}
	return fmt.Errorf("translation must be a string or plural forms, got %T", v)
}
