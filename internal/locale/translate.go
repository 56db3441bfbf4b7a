package locale

// Pick returns the text matching the request language, defaulting to Portuguese.
func Pick(language, english, portuguese string) string {
	if NormalizeLanguage(language) == LanguageEnglish {
		if english != "" {
			return english
		}
		return portuguese
	}
	if portuguese != "" {
		return portuguese
	}
	return english
}
