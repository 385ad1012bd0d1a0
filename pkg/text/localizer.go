package text

// Localizer translates message templates. Implementations return the input unchanged
// when no translation exists.
type Localizer interface {
	Localize(lang, domain, message string) string
	LocalizePlural(lang, domain, singular, plural string, n float64) string
}

// Options control rendering.
type Options struct {
	Level     InfoLevel
	Localizer Localizer
	Language  string
}

type identityLocalizer struct{}

func (identityLocalizer) Localize(_, _, message string) string { return message }

func (identityLocalizer) LocalizePlural(_, _, singular, plural string, n float64) string {
	if n == 1 || n == -1 {
		return singular
	}
	return plural
}

// Identity is a Localizer that never translates.
var Identity Localizer = identityLocalizer{}
