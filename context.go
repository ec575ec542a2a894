package intl

import "context"

type contextKey string

func (c contextKey) String() string {
	return "intl/" + string(c)
}

const (
	ctxKeyProvider  = contextKey("providerKey")
	ctxKeyLanguages = contextKey("languagesKey")
)

// ToContext adds a provider to the current supplied context.
func ToContext(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, ctxKeyProvider, p)
}

// FromContext extracts a provider from the supplied context if any exist.
func FromContext(ctx context.Context) *Provider {
	p, ok := ctx.Value(ctxKeyProvider).(*Provider)
	if !ok {
		return nil
	}
	return p
}

// LanguagesToContext adds a caller's raw language preference list to
// the current supplied context. The list is carried as supplied; which
// language actually wins is decided by the negotiation module.
func LanguagesToContext(ctx context.Context, languages []string) context.Context {
	return context.WithValue(ctx, ctxKeyLanguages, languages)
}

// LanguagesFromContext extracts the language preference list from the
// supplied context if any exist.
func LanguagesFromContext(ctx context.Context) []string {
	languages, ok := ctx.Value(ctxKeyLanguages).([]string)
	if !ok {
		return nil
	}
	return languages
}
