package generation

import (
	"context"
	"log/slog"
)

// Service is the default Generator implementation: prompt construction,
// model fallback resolution and fragment extraction wired together.
type Service struct {
	resolver *Resolver
	logger   *slog.Logger
}

// NewService creates a Service over the given resolver.
func NewService(resolver *Resolver, logger *slog.Logger) (*Service, error) {
	if resolver == nil {
		return nil, ErrInvalidConfig
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		resolver: resolver,
		logger:   logger,
	}, nil
}

// GenerateSite implements Generator.
func (s *Service) GenerateSite(ctx context.Context, req SiteRequest) (*SiteResult, error) {
	prompt := BuildPrompt(req)

	raw, err := s.resolver.Resolve(ctx, prompt)
	if err != nil {
		return nil, err
	}

	fragments := ExtractFragments(raw)
	s.logger.InfoContext(ctx, "extracted fragments",
		"raw_length", len(raw),
		"html_length", len(fragments.HTML),
		"css_length", len(fragments.CSS))

	return &SiteResult{
		HTML: fragments.HTML,
		CSS:  fragments.CSS,
	}, nil
}
