package intl

import (
	"context"
	"reflect"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pitabwire/util"
	"github.com/rs/xid"
	"golang.org/x/text/language"

	"github.com/pitabwire/intl/config"
)

// Provider holds the merged localization configuration for one scope of
// an application. An instance is immutable from the point of view of
// readers; it is pushed and pulled from contexts to make it easy to
// pass around.
type Provider struct {
	id          string
	environment string

	locale                   language.Tag
	messages                 Messages
	formats                  *Formats
	timeZone                 *time.Location
	now                      func() time.Time
	defaultTranslationValues map[string]any

	onError         ErrorHandler
	messageFallback FallbackFunc

	logger        *util.LogEntry
	bundle        *i18n.Bundle
	configuration any

	// identity of the last dictionary that went through validation,
	// so replacing the messages triggers exactly one new pass.
	validatedRef uintptr
}

// Option configures a provider during construction or update.
type Option func(ctx context.Context, p *Provider)

// New creates a provider with the supplied options merged over
// environment-driven defaults. In development mode the messages
// dictionary is validated once as part of construction.
func New(ctx context.Context, opts ...Option) *Provider {
	defaultCfg, _ := config.FromEnv[config.ConfigurationDefault]()

	locale, err := language.Parse(defaultCfg.DefaultLocale())
	if err != nil {
		locale = language.English
	}

	p := &Provider{
		id:              xid.New().String(),
		environment:     defaultCfg.RuntimeEnvironment(),
		locale:          locale,
		now:             time.Now,
		onError:         defaultErrorHandler,
		messageFallback: defaultMessageFallback,
		logger:          util.Log(ctx),
		configuration:   &defaultCfg,
	}

	if tz := defaultCfg.DefaultTimeZone(); tz != "" {
		if loc, tzErr := time.LoadLocation(tz); tzErr == nil {
			p.timeZone = loc
		}
	}

	for _, opt := range opts {
		opt(ctx, p)
	}

	p.runValidation(ctx)
	return p
}

// Update re-applies options on an existing provider. Validation runs
// again only when the messages dictionary was actually replaced.
func (p *Provider) Update(ctx context.Context, opts ...Option) {
	for _, opt := range opts {
		opt(ctx, p)
	}
	p.runValidation(ctx)
}

// runValidation performs the development-only shape check of the
// messages dictionary, memoized on dictionary identity so one
// dictionary is never validated twice.
func (p *Provider) runValidation(ctx context.Context) {
	if p.environment != config.EnvDevelopment {
		return
	}
	if p.messages == nil {
		return
	}

	ref := reflect.ValueOf(p.messages).Pointer()
	if ref == p.validatedRef {
		return
	}
	p.validatedRef = ref

	checkMessages(ctx, p.messages, p.onError)
}

// ID is the unique identifier of this provider instance, used to
// correlate its diagnostics in logs.
func (p *Provider) ID() string {
	return p.id
}

// Environment gets the runtime environment of the provider.
func (p *Provider) Environment() string {
	return p.environment
}

// Locale gets the configured locale tag.
func (p *Provider) Locale() language.Tag {
	return p.locale
}

// Messages gets the configured messages dictionary, if any.
func (p *Provider) Messages() Messages {
	return p.messages
}

// Formats gets the configured named format overrides, if any.
func (p *Provider) Formats() *Formats {
	return p.formats
}

// TimeZone gets the configured time zone, defaulting to UTC.
func (p *Provider) TimeZone() *time.Location {
	if p.timeZone == nil {
		return time.UTC
	}
	return p.timeZone
}

// Now gets the reference time used for relative formatting, in the
// provider's time zone.
func (p *Provider) Now() time.Time {
	return p.now().In(p.TimeZone())
}

// DefaultTranslationValues gets values merged into every message's
// template data by the lookup module.
func (p *Provider) DefaultTranslationValues() map[string]any {
	return p.defaultTranslationValues
}

// ReportError funnels a diagnostic through the configured error
// handler. It never panics and never blocks the caller.
func (p *Provider) ReportError(ctx context.Context, err *Error) {
	p.onError(ctx, err)
}

// MessageFallback renders the text shown in place of a message that
// could not be resolved.
func (p *Provider) MessageFallback(info FallbackInfo) string {
	return p.messageFallback(info)
}

// Bundle gets the translation bundle loaded at construction, if any.
func (p *Provider) Bundle() *i18n.Bundle {
	return p.bundle
}

// Config gets the configuration object supplied at startup.
func (p *Provider) Config() any {
	return p.configuration
}

// Log returns the provider's logger bound to the supplied context.
func (p *Provider) Log(ctx context.Context) *util.LogEntry {
	return p.logger.WithContext(ctx).WithField("provider", p.id)
}
