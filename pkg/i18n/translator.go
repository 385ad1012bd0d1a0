package i18n

import (
	"context"
	"io"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/kit/pkg/logger"
	"github.com/dmitrymomot/kit/pkg/text"
)

// DefaultLanguage is the language tried last when no better match exists.
const DefaultLanguage = "en"

var _ text.Localizer = (*Translator)(nil)

// Translator translates messages from a catalog. It implements text.Localizer
// and is safe for concurrent use.
type Translator struct {
	mu             sync.RWMutex
	catalog        Catalog
	languages      []string
	matcher        language.Matcher
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger
	adapter        TranslationAdapter
}

// NewTranslator creates a Translator and loads its catalog from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:     adapter,
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload reads the catalog from the adapter again, replacing the current one
// only on success.
func (t *Translator) Reload(ctx context.Context) error {
	catalog, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}

	langs := make([]string, 0, len(catalog))
	for lang := range catalog {
		langs = append(langs, lang)
	}
	slices.Sort(langs)

	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tags = append(tags, language.Make(lang))
	}

	t.mu.Lock()
	t.catalog = catalog
	t.languages = langs
	t.matcher = nil
	if len(tags) > 0 {
		t.matcher = language.NewMatcher(tags)
	}
	t.mu.Unlock()

	if len(langs) == 0 {
		t.logger.WarnContext(ctx, "no translations provided")
	} else {
		t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", langs))
	}
	return nil
}

// SupportedLanguages returns the catalog languages in sorted order.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.languages)
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation reports whether lang has its own translation of message.
// No language fallback is applied.
func (t *Translator) HasTranslation(lang, domain, message string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.catalog[lang][domain][message]
	return ok
}

// Localize implements text.Localizer. Untranslated messages are returned unchanged.
func (t *Translator) Localize(lang, domain, message string) string {
	if message == "" {
		return message
	}
	v, ok := t.lookup(lang, domain, message)
	if !ok {
		return message
	}
	switch tr := v.(type) {
	case string:
		return tr
	case map[string]any:
		for _, form := range []string{"one", "other"} {
			if s, ok := tr[form].(string); ok {
				return s
			}
		}
	}
	return message
}

// LocalizePlural implements text.Localizer. A catalog entry with plural forms
// under singular takes precedence; otherwise singular and plural are translated
// separately and chosen by n.
func (t *Translator) LocalizePlural(lang, domain, singular, plural string, n float64) string {
	one := math.Abs(n) == 1
	if v, ok := t.lookup(lang, domain, singular); ok {
		if forms, isForms := v.(map[string]any); isForms {
			if s, found := pluralForm(forms, n); found {
				return s
			}
		}
	}
	if one {
		return t.Localize(lang, domain, singular)
	}
	return t.Localize(lang, domain, plural)
}

// MatchLanguage picks the best catalog language for an Accept-Language style
// preference list such as "fr-CH, fr;q=0.9, en;q=0.8". The default language is
// returned when nothing matches.
func (t *Translator) MatchLanguage(preferences string) string {
	prefs, _, err := language.ParseAcceptLanguage(preferences)
	if err != nil || len(prefs) == 0 {
		return t.defaultLang
	}
	for _, p := range prefs {
		if lang, ok := t.resolve(p.String()); ok {
			return lang
		}
	}
	return t.defaultLang
}

func pluralForm(forms map[string]any, n float64) (string, bool) {
	var order []string
	switch {
	case n == 0:
		order = []string{"zero", "other"}
	case math.Abs(n) == 1:
		order = []string{"one"}
	default:
		order = []string{"other"}
	}
	for _, form := range order {
		if s, ok := forms[form].(string); ok {
			return s, true
		}
	}
	return "", false
}

// lookup finds message in the best language for lang, then in the default language.
func (t *Translator) lookup(lang, domain, message string) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	candidates := make([]string, 0, 2)
	if resolved, ok := t.resolveLocked(lang); ok {
		candidates = append(candidates, resolved)
	}
	if !slices.Contains(candidates, t.defaultLang) {
		candidates = append(candidates, t.defaultLang)
	}
	for _, l := range candidates {
		if v, ok := t.catalog[l][domain][message]; ok {
			return v, true
		}
	}

	if t.missingLogMode {
		t.logger.Warn("translation not found",
			logger.Language(lang),
			slog.String("domain", domain),
			slog.String("message", message),
		)
	}
	return nil, false
}

func (t *Translator) resolve(lang string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.resolveLocked(lang)
}

// resolveLocked maps a language tag onto a catalog language: exact keys first,
// then case-insensitive keys, then the closest match by base language or region.
func (t *Translator) resolveLocked(lang string) (string, bool) {
	if lang == "" {
		return "", false
	}
	if _, ok := t.catalog[lang]; ok {
		return lang, true
	}
	for _, l := range t.languages {
		if strings.EqualFold(l, lang) {
			return l, true
		}
	}
	if t.matcher == nil {
		return "", false
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return "", false
	}
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return t.languages[idx], true
}
