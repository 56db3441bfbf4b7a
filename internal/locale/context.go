package locale

import "context"

type contextKey struct{}

// WithLanguage stores the request language in ctx.
func WithLanguage(ctx context.Context, language string) context.Context {
	return context.WithValue(ctx, contextKey{}, language)
}

// FromContext returns the request language, Portuguese when unset.
func FromContext(ctx context.Context) string {
	if ctx != nil {
		if lang, ok := ctx.Value(contextKey{}).(string); ok {
			if normalized := NormalizeLanguage(lang); normalized != "" {
				return normalized
			}
		}
	}
	return LanguagePortuguese
}
