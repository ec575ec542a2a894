package intl

import (
	"context"
	"time"

	"golang.org/x/text/language"

	"github.com/pitabwire/intl/config"
)

// WithMessages Option that supplies the messages dictionary of the provider.
func WithMessages(msgs Messages) Option {
	return func(_ context.Context, p *Provider) {
		p.messages = msgs
	}
}

// WithMessageFile Option that loads the messages dictionary from a
// toml, yaml or json file. Load failures are reported through the
// error handler; the provider stays usable without messages.
func WithMessageFile(path string) Option {
	return func(ctx context.Context, p *Provider) {
		msgs, err := ReadMessageFile(path)
		if err != nil {
			p.onError(ctx, &Error{Code: CodeInvalidMessage, Message: err.Error()})
			return
		}
		p.messages = msgs
	}
}

// WithLocale Option that sets the locale tag of the provider.
func WithLocale(tag string) Option {
	return func(ctx context.Context, p *Provider) {
		locale, err := language.Parse(tag)
		if err != nil {
			p.Log(ctx).WithError(err).WithField("locale", tag).Warn("could not parse locale tag")
			return
		}
		p.locale = locale
	}
}

// WithFormats Option that sets named format overrides.
func WithFormats(formats *Formats) Option {
	return func(_ context.Context, p *Provider) {
		p.formats = formats
	}
}

// WithTimeZone Option that sets the time zone by IANA name.
func WithTimeZone(name string) Option {
	return func(ctx context.Context, p *Provider) {
		loc, err := time.LoadLocation(name)
		if err != nil {
			p.Log(ctx).WithError(err).WithField("timeZone", name).Warn("could not load time zone")
			return
		}
		p.timeZone = loc
	}
}

// WithNow Option that pins the reference time, mostly useful in tests
// and batch renderings that must agree on a single instant.
func WithNow(now func() time.Time) Option {
	return func(_ context.Context, p *Provider) {
		p.now = now
	}
}

// WithDefaultTranslationValues Option that supplies values available to
// every message template.
func WithDefaultTranslationValues(values map[string]any) Option {
	return func(_ context.Context, p *Provider) {
		p.defaultTranslationValues = values
	}
}

// WithOnError Option that overrides the diagnostic handler.
func WithOnError(handler ErrorHandler) Option {
	return func(_ context.Context, p *Provider) {
		if handler == nil {
			return
		}
		p.onError = handler
	}
}

// WithMessageFallback Option that overrides the fallback text rendering.
func WithMessageFallback(fallback FallbackFunc) Option {
	return func(_ context.Context, p *Provider) {
		if fallback == nil {
			return
		}
		p.messageFallback = fallback
	}
}

// WithEnvironment Option that sets the runtime environment of the provider.
func WithEnvironment(environment string) Option {
	return func(_ context.Context, p *Provider) {
		p.environment = environment
	}
}

// WithConfig Option that helps to specify or override the configuration object of our provider.
func WithConfig(cfg any) Option {
	return func(ctx context.Context, p *Provider) {
		p.configuration = cfg

		intlCfg, ok := cfg.(config.ConfigurationIntl)
		if ok {
			if intlCfg.RuntimeEnvironment() != "" {
				WithEnvironment(intlCfg.RuntimeEnvironment())(ctx, p)
			}

			if intlCfg.DefaultLocale() != "" {
				WithLocale(intlCfg.DefaultLocale())(ctx, p)
			}

			if intlCfg.DefaultTimeZone() != "" {
				WithTimeZone(intlCfg.DefaultTimeZone())(ctx, p)
			}
		}

		WithLogger()(ctx, p)
	}
}
