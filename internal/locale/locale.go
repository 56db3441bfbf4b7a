package locale

import (
	"strings"

	"golang.org/x/text/language"
)

const (
	LanguagePortuguese = "pt"
	LanguageEnglish    = "en"
)

type Preference struct {
	Language string
	Locale   string
	HTMLLang string
}

func NormalizeLanguage(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "pt") || trimmed == "br" {
		return LanguagePortuguese
	}
	if strings.HasPrefix(trimmed, "en") {
		return LanguageEnglish
	}
	return ""
}

func LanguageFromCountryCode(code string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(code))
	if trimmed == "" {
		return ""
	}
	switch trimmed {
	case "BR", "PT", "AO", "MZ":
		return LanguagePortuguese
	}
	return LanguageEnglish
}

// LanguageFromAcceptLanguage returns the first supported language in q-order.
func LanguageFromAcceptLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(strings.TrimSpace(header))
	if err != nil {
		return ""
	}
	for _, tag := range tags {
		base, _ := tag.Base()
		if normalized := NormalizeLanguage(base.String()); normalized != "" {
			return normalized
		}
	}
	return ""
}

func PreferenceForLanguage(lang string) Preference {
	normalized := NormalizeLanguage(lang)
	if normalized == LanguageEnglish {
		return Preference{Language: LanguageEnglish, Locale: "en_US", HTMLLang: "en-US"}
	}
	return Preference{Language: LanguagePortuguese, Locale: "pt_BR", HTMLLang: "pt-BR"}
}
