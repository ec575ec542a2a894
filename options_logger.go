package intl

import (
	"context"
	"log/slog"

	"github.com/pitabwire/util"

	config2 "github.com/pitabwire/intl/config"
)

// WithLogger Option that initializes the provider's internal logger.
func WithLogger(opts ...util.Option) Option {
	return func(ctx context.Context, p *Provider) {
		if p.Config() != nil {
			cfg, ok := p.Config().(config2.ConfigurationLogLevel)
			if ok {
				logLevel, err := util.ParseLevel(cfg.LoggingLevel())
				if err == nil {
					opts = append(opts, util.WithLogLevel(logLevel))
				}
				opts = append(opts,
					util.WithLogTimeFormat(cfg.LoggingTimeFormat()),
					util.WithLogNoColor(!cfg.LoggingColored()))
			}
		}

		p.logger = util.NewLogger(ctx, opts...)
	}
}

// SLog returns the provider's logger as a *slog.Logger.
func (p *Provider) SLog(ctx context.Context) *slog.Logger {
	return p.Log(ctx).SLog()
}
