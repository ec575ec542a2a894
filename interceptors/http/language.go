package http

import (
	"net/http"
	"strings"

	"github.com/pitabwire/intl"
)

// ExtractLanguageFromRequest collects the caller's raw language
// preferences: an explicit "lang" form value first, then the
// Accept-Language header entries in the order supplied.
func ExtractLanguageFromRequest(req *http.Request) []string {
	var languages []string
	if lang := req.FormValue("lang"); lang != "" {
		languages = append(languages, lang)
	}

	return append(languages, ExtractLanguageFromHeader(req.Header)...)
}

// ExtractLanguageFromHeader splits the Accept-Language header into its
// raw entries, without any quality-weight negotiation.
func ExtractLanguageFromHeader(header http.Header) []string {
	acceptLanguageHeader := header.Get("Accept-Language")
	if acceptLanguageHeader == "" {
		return nil
	}

	parts := strings.Split(acceptLanguageHeader, ",")
	languages := make([]string, 0, len(parts))
	for _, part := range parts {
		lang, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if lang != "" {
			languages = append(languages, lang)
		}
	}
	return languages
}

// LanguageMiddleware is an HTTP middleware that extracts language
// information and sets it in the request context.
func LanguageMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		languages := ExtractLanguageFromRequest(r)

		ctx := intl.LanguagesToContext(r.Context(), languages)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

// ProviderMiddleware is an HTTP middleware that attaches a provider to
// every request context so downstream handlers can reach the merged
// localization configuration.
func ProviderMiddleware(p *intl.Provider, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := intl.ToContext(r.Context(), p)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
