package bridge

import (
	"github.com/viant/treeshell/engine"
	"go.uber.org/zap"
)

// Renderer turns a structured engine result into display text
type Renderer func(result engine.Result) string

// Option is a function that configures the service.
type Option func(s *Service)

// WithVariant sets the bridge variant.
func WithVariant(variant Variant) Option {
	return func(s *Service) {
		s.variant = variant
	}
}

// WithRenderer sets the renderer used by the rendered variant.
func WithRenderer(renderer Renderer) Option {
	return func(s *Service) {
		s.render = renderer
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}
