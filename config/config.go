package config

import (
	"context"

	"github.com/caarlos0/env/v11"
)

type contextKey string

func (c contextKey) String() string {
	return "intl/config/" + string(c)
}

const ctxKeyConfiguration = contextKey("configurationKey")

// EnvDevelopment enables the development-only diagnostics such as
// messages-dictionary validation. Any other value runs production
// behaviour.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// ToContext adds localization configuration to the current supplied context.
func ToContext(ctx context.Context, config any) context.Context {
	return context.WithValue(ctx, ctxKeyConfiguration, config)
}

// FromContext extracts localization configuration from the supplied context if any exist.
func FromContext[T any](ctx context.Context) T {
	if cfg, ok := ctx.Value(ctxKeyConfiguration).(T); ok {
		return cfg
	}
	var zero T
	return zero
}

// FromEnv convenience method to process configs.
func FromEnv[T any]() (T, error) {
	return env.ParseAs[T]()
}

// FillEnv convenience method to fill a config object with environment data.
func FillEnv(v any) error {
	return env.Parse(v)
}

// ConfigurationDefault carries the environment-driven settings of a
// localization provider.
type ConfigurationDefault struct {
	LogLevel      string `envDefault:"info"                      env:"LOG_LEVEL"       yaml:"log_level"`
	LogFormat     string `envDefault:"text"                      env:"LOG_FORMAT"      yaml:"log_format"`
	LogTimeFormat string `envDefault:"2006-01-02T15:04:05Z07:00" env:"LOG_TIME_FORMAT" yaml:"log_time_format"`
	LogColored    bool   `envDefault:"true"                      env:"LOG_COLORED"     yaml:"log_colored"`

	Environment string `envDefault:"production" env:"INTL_ENVIRONMENT"    yaml:"environment"`
	Locale      string `envDefault:"en"         env:"INTL_DEFAULT_LOCALE" yaml:"default_locale"`
	TimeZone    string `envDefault:""           env:"INTL_TIME_ZONE"      yaml:"time_zone"`
	MessagesDir string `envDefault:"messages"   env:"INTL_MESSAGES_DIR"   yaml:"messages_dir"`
}

// ConfigurationLogLevel is implemented by configurations that control log output.
type ConfigurationLogLevel interface {
	LoggingLevel() string
	LoggingTimeFormat() string
	LoggingColored() bool
}

func (c *ConfigurationDefault) LoggingLevel() string {
	return c.LogLevel
}

func (c *ConfigurationDefault) LoggingTimeFormat() string {
	return c.LogTimeFormat
}

func (c *ConfigurationDefault) LoggingColored() bool {
	return c.LogColored
}

// ConfigurationIntl is implemented by configurations that carry
// localization settings.
type ConfigurationIntl interface {
	RuntimeEnvironment() string
	DefaultLocale() string
	DefaultTimeZone() string
	MessagesDirectory() string
}

func (c *ConfigurationDefault) RuntimeEnvironment() string {
	return c.Environment
}

func (c *ConfigurationDefault) DefaultLocale() string {
	return c.Locale
}

func (c *ConfigurationDefault) DefaultTimeZone() string {
	return c.TimeZone
}

func (c *ConfigurationDefault) MessagesDirectory() string {
	return c.MessagesDir
}

// IsDevelopment reports whether development-only diagnostics should run.
func (c *ConfigurationDefault) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}
