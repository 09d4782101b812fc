package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the locale used when nothing else is known.
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the header we are willing to parse.
const maxAcceptLanguageLength = 4096

// Negotiate picks the best locale in supported for an Accept-Language header.
// It returns fallback when the header is empty, malformed or matches nothing.
// The returned value is one of supported, lowercased.
func Negotiate(header string, supported []string, fallback string) string {
	if header == "" || len(supported) == 0 {
		return fallback
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, strings.ToLower(s))
	}
	if len(tags) == 0 {
		return fallback
	}

	_, idx, confidence := language.NewMatcher(tags).Match(prefs...)
	if confidence == language.No {
		return fallback
	}
	return names[idx]
}

// Normalize validates a locale string and returns it lowercased with '-'
// separators, or "" if it is not a well-formed BCP 47 tag.
func Normalize(lang string) string {
	lang = strings.TrimSpace(strings.ReplaceAll(lang, "_", "-"))
	if lang == "" || len(lang) > 35 {
		return ""
	}
	if _, err := language.Parse(lang); err != nil {
		return ""
	}
	return strings.ToLower(lang)
}

// Preferred returns the highest-quality locale of an Accept-Language header,
// lowercased, or "" if the header cannot be parsed.
func Preferred(header string) string {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return ""
	}
	return strings.ToLower(prefs[0].String())
}
