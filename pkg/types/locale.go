package types

import (
	"golang.org/x/text/language"
)

// separators are the decimal and grouping marks of a locale.
type separators struct {
	decimal string
	group   []string
}

var defaultSeparators = separators{decimal: ".", group: []string{","}}

// localeSeparators is keyed by full tag first, then by base language.
var localeSeparators = map[string]separators{
	"de-CH": {decimal: ".", group: []string{"'", "\u2019"}},
	"de":    {decimal: ",", group: []string{"."}},
	"es":    {decimal: ",", group: []string{"."}},
	"it":    {decimal: ",", group: []string{"."}},
	"nl":    {decimal: ",", group: []string{"."}},
	"pt":    {decimal: ",", group: []string{"."}},
	"id":    {decimal: ",", group: []string{"."}},
	"tr":    {decimal: ",", group: []string{"."}},
	"da":    {decimal: ",", group: []string{"."}},
	"fr":    {decimal: ",", group: []string{"\u202f", "\u00a0", " "}},
	"ru":    {decimal: ",", group: []string{"\u00a0", " "}},
	"uk":    {decimal: ",", group: []string{"\u00a0", " "}},
	"pl":    {decimal: ",", group: []string{"\u00a0", " "}},
	"cs":    {decimal: ",", group: []string{"\u00a0", " "}},
	"sv":    {decimal: ",", group: []string{"\u00a0", " "}},
	"fi":    {decimal: ",", group: []string{"\u00a0", " "}},
	"nb":    {decimal: ",", group: []string{"\u00a0", " "}},
}

// separatorsFor returns the separators of a BCP 47 language tag.
func separatorsFor(lang string) separators {
	if lang == "" {
		return defaultSeparators
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return defaultSeparators
	}
	if s, ok := localeSeparators[tag.String()]; ok {
		return s
	}
	base, _ := tag.Base()
	if region, conf := tag.Region(); conf == language.Exact {
		if s, ok := localeSeparators[base.String()+"-"+region.String()]; ok {
			return s
		}
	}
	if s, ok := localeSeparators[base.String()]; ok {
		return s
	}
	return defaultSeparators
}
