package intl

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// WithTranslations Option that loads per-language message catalogs into
// a go-i18n bundle for use by the lookup module. Files are expected at
// <translationsFolder>/messages.<lang>.toml.
func WithTranslations(translationsFolder string, languages ...string) Option {
	return func(_ context.Context, p *Provider) {
		if translationsFolder == "" {
			translationsFolder = "messages"
		}

		bundle := i18n.NewBundle(p.locale)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
		bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
		for _, lang := range languages {
			bundle.MustLoadMessageFile(fmt.Sprintf("%s/messages.%v.toml", translationsFolder, lang))
		}

		p.bundle = bundle
	}
}

// WithBundle Option that supplies an already-assembled translation bundle.
func WithBundle(bundle *i18n.Bundle) Option {
	return func(_ context.Context, p *Provider) {
		p.bundle = bundle
	}
}
