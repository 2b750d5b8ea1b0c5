package sitemeta

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// parseTag parses a hyphen or underscore separated locale.
func parseTag(s string) (language.Tag, error) {
	return language.Parse(strings.ReplaceAll(s, "_", "-"))
}

// OGLocaleFor converts a language tag such as "en-GB" to the Open Graph
// locale form "en_GB". A tag without a region gets its most likely region.
func OGLocaleFor(lang string) (string, error) {
	tag, err := parseTag(lang)
	if err != nil {
		return "", fmt.Errorf("sitemeta: parse lang %q: %w", lang, err)
	}
	base, _ := tag.Base()
	region, conf := tag.Region()
	if conf == language.No {
		return "", fmt.Errorf("sitemeta: lang %q has no region", lang)
	}
	return base.String() + "_" + region.String(), nil
}

// LangFor converts an Open Graph locale such as "en_GB" to the language tag "en-GB".
func LangFor(ogLocale string) (string, error) {
	tag, err := parseTag(ogLocale)
	if err != nil {
		return "", fmt.Errorf("sitemeta: parse ogLocale %q: %w", ogLocale, err)
	}
	return tag.String(), nil
}

// LocalesAgree reports whether Lang and OGLocale name the same language and
// region. Disagreement is allowed; callers may warn about it.
func (m Metadata) LocalesAgree() bool {
	lang, err := parseTag(m.Lang)
	if err != nil {
		return false
	}
	og, err := parseTag(m.OGLocale)
	if err != nil {
		return false
	}
	lb, _ := lang.Base()
	ob, _ := og.Base()
	lr, _ := lang.Region()
	orr, _ := og.Region()
	return lb == ob && lr == orr
}
