package intl_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"

	"github.com/pitabwire/intl"
	"github.com/pitabwire/intl/config"
)

type ProviderSuite struct {
	suite.Suite
}

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(ProviderSuite))
}

type errorRecorder struct {
	calls []*intl.Error
}

func (r *errorRecorder) handle(_ context.Context, err *intl.Error) {
	r.calls = append(r.calls, err)
}

func (s *ProviderSuite) TestValidationRunsOnlyInDevelopment() {
	testCases := []struct {
		name          string
		environment   string
		messages      intl.Messages
		expectedCalls int
	}{
		{
			name:          "development reports offending keys",
			environment:   config.EnvDevelopment,
			messages:      intl.Messages{"a.b": "x"},
			expectedCalls: 1,
		},
		{
			name:          "production skips validation entirely",
			environment:   config.EnvProduction,
			messages:      intl.Messages{"a.b": "x"},
			expectedCalls: 0,
		},
		{
			name:          "development with clean messages stays silent",
			environment:   config.EnvDevelopment,
			messages:      intl.Messages{"greeting": "Hello"},
			expectedCalls: 0,
		},
		{
			name:          "development without messages stays silent",
			environment:   config.EnvDevelopment,
			messages:      nil,
			expectedCalls: 0,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			recorder := &errorRecorder{}
			intl.New(context.Background(),
				intl.WithEnvironment(tc.environment),
				intl.WithOnError(recorder.handle),
				intl.WithMessages(tc.messages),
			)

			s.Len(recorder.calls, tc.expectedCalls)
			if tc.expectedCalls > 0 {
				s.Equal(intl.CodeInvalidKey, recorder.calls[0].Code)
			}
		})
	}
}

func (s *ProviderSuite) TestValidationMemoizedOnDictionaryIdentity() {
	ctx := context.Background()
	recorder := &errorRecorder{}
	messages := intl.Messages{"a.b": "x"}

	p := intl.New(ctx,
		intl.WithEnvironment(config.EnvDevelopment),
		intl.WithOnError(recorder.handle),
		intl.WithMessages(messages),
	)
	s.Require().Len(recorder.calls, 1)

	// Same dictionary reference, no new pass.
	p.Update(ctx, intl.WithMessages(messages))
	s.Len(recorder.calls, 1)

	// A replaced dictionary is validated once more.
	p.Update(ctx, intl.WithMessages(intl.Messages{"c.d": "y"}))
	s.Len(recorder.calls, 2)
}

func (s *ProviderSuite) TestDefaultsAndOptions() {
	ctx := context.Background()
	nairobi, err := time.LoadLocation("Africa/Nairobi")
	s.Require().NoError(err)

	instant := time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC)
	values := map[string]any{"appName": "Duka"}
	formats := &intl.Formats{
		DateTime: map[string]intl.DateTimeFormat{"short": {Layout: "02/01/2006"}},
	}

	p := intl.New(ctx,
		intl.WithLocale("sw-KE"),
		intl.WithTimeZone("Africa/Nairobi"),
		intl.WithNow(func() time.Time { return instant }),
		intl.WithDefaultTranslationValues(values),
		intl.WithFormats(formats),
	)

	s.Equal(language.MustParse("sw-KE"), p.Locale())
	s.Equal(nairobi.String(), p.TimeZone().String())
	s.Equal(instant.In(nairobi), p.Now())
	s.Equal(values, p.DefaultTranslationValues())
	s.Equal(formats, p.Formats())
	s.NotEmpty(p.ID())

	fallback := intl.New(ctx)
	s.Equal(language.English, fallback.Locale())
	s.Equal(time.UTC, fallback.TimeZone())
}

func (s *ProviderSuite) TestInvalidLocaleAndTimeZoneKeepDefaults() {
	p := intl.New(context.Background(),
		intl.WithLocale("not a locale"),
		intl.WithTimeZone("Nowhere/Special"),
	)

	s.Equal(language.English, p.Locale())
	s.Equal(time.UTC, p.TimeZone())
}

func (s *ProviderSuite) TestMessageFallbackDefaultsToDottedPath() {
	p := intl.New(context.Background())

	withNamespace := p.MessageFallback(intl.FallbackInfo{Namespace: "about.team", Key: "lead"})
	s.Equal("about.team.lead", withNamespace)

	withoutNamespace := p.MessageFallback(intl.FallbackInfo{Key: "greeting"})
	s.Equal("greeting", withoutNamespace)
}

func (s *ProviderSuite) TestReportErrorUsesConfiguredHandler() {
	recorder := &errorRecorder{}
	p := intl.New(context.Background(), intl.WithOnError(recorder.handle))

	p.ReportError(context.Background(), &intl.Error{
		Code:    intl.CodeMissingMessage,
		Message: "no message for greeting",
	})

	s.Require().Len(recorder.calls, 1)
	s.Equal(intl.CodeMissingMessage, recorder.calls[0].Code)
}

func (s *ProviderSuite) TestWithConfigAppliesIntlSettings() {
	cfg := &config.ConfigurationDefault{
		LogLevel:      "debug",
		LogTimeFormat: time.RFC3339,
		Environment:   config.EnvDevelopment,
		Locale:        "sw",
		TimeZone:      "Africa/Nairobi",
	}

	p := intl.New(context.Background(), intl.WithConfig(cfg))

	s.Equal(config.EnvDevelopment, p.Environment())
	s.Equal(language.Swahili, p.Locale())
	s.Equal("Africa/Nairobi", p.TimeZone().String())
	s.Same(cfg, p.Config())
}

func (s *ProviderSuite) TestEnvironmentDrivenDefaults() {
	s.T().Setenv("INTL_ENVIRONMENT", config.EnvDevelopment)
	s.T().Setenv("INTL_DEFAULT_LOCALE", "sw")

	recorder := &errorRecorder{}
	p := intl.New(context.Background(),
		intl.WithOnError(recorder.handle),
		intl.WithMessages(intl.Messages{"a.b": "x"}),
	)

	s.Equal(config.EnvDevelopment, p.Environment())
	s.Equal(language.Swahili, p.Locale())
	s.Len(recorder.calls, 1)
}

func (s *ProviderSuite) TestContextRoundTrip() {
	ctx := context.Background()
	s.Nil(intl.FromContext(ctx))

	p := intl.New(ctx)
	ctx = intl.ToContext(ctx, p)
	s.Same(p, intl.FromContext(ctx))

	s.Nil(intl.LanguagesFromContext(ctx))
	ctx = intl.LanguagesToContext(ctx, []string{"sw", "en"})
	s.Equal([]string{"sw", "en"}, intl.LanguagesFromContext(ctx))
}
