package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lexsim-backend/extractor"
	"lexsim-backend/fallback"
	"lexsim-backend/models"

	"go.uber.org/zap"
)

// Fallback notices appended to the warning list when a substitute artifact
// replaces a missing one. They supersede the generic extraction warnings.
const (
	FallbackMarkdownMessage = "Se generó contenido en Markdown de respaldo porque el modelo no lo proporcionó."
	FallbackJSONMessage     = "Se generó un bloque JSON de respaldo porque el modelo no entregó uno válido."
)

var ErrGenerationFailed = errors.New("failed to generate simulation")

// SimulationService orchestrates one simulation: prompt the generator,
// split its output, and substitute fallback content for whichever artifact
// is missing. The response always carries both artifacts.
type SimulationService struct {
	generator Generator
	extractor *extractor.Extractor
	logger    *zap.Logger
}

// SimulationServiceOption is a functional option for SimulationService
type SimulationServiceOption func(*SimulationService)

// WithGenerator sets the text generation provider
func WithGenerator(generator Generator) SimulationServiceOption {
	return func(s *SimulationService) {
		s.generator = generator
	}
}

// WithExtractor sets the payload extractor
func WithExtractor(ex *extractor.Extractor) SimulationServiceOption {
	return func(s *SimulationService) {
		s.extractor = ex
	}
}

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) SimulationServiceOption {
	return func(s *SimulationService) {
		s.logger = logger.With(zap.String("component", "simulation_service"))
	}
}

// NewSimulationService creates a new simulation service
func NewSimulationService(opts ...SimulationServiceOption) *SimulationService {
	s := &SimulationService{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.extractor == nil {
		s.extractor = extractor.New(s.logger)
	}
	return s
}

// Simulate generates a complete simulation for the request. Malformed
// model output degrades to warnings plus fallback content; only provider
// failures and internal errors surface as errors.
func (s *SimulationService) Simulate(ctx context.Context, req *models.SimulateRequest) (*models.SimulateResponse, error) {
	if s.generator == nil {
		return nil, errors.New("generator not set")
	}

	start := time.Now()
	raw, err := s.generator.Generate(ctx, SystemPrompt, BuildUserPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	markdown, simulation, warnings := s.extractor.Extract(raw)

	var fallbackMessages []string
	if strings.TrimSpace(markdown) == "" {
		markdown = fallback.BuildMarkdown(req)
		fallbackMessages = append(fallbackMessages, FallbackMarkdownMessage)
	}
	if simulation == nil {
		simulation = fallback.BuildSimulation(req)
		fallbackMessages = append(fallbackMessages, FallbackJSONMessage)
	}

	if len(fallbackMessages) > 0 {
		s.logger.Warn("model response was incomplete, fallback content engaged",
			zap.Strings("substitutes", fallbackMessages),
		)
		warnings = mergeWarnings(warnings, fallbackMessages)
	}

	s.logger.Info("simulation processed",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("warnings", len(warnings)),
	)

	return &models.SimulateResponse{
		Markdown:   markdown,
		Simulation: simulation,
		Warnings:   warnings,
	}, nil
}

// mergeWarnings drops the generic "artifact missing" warnings that a
// fallback has superseded and appends the fallback notices in their place.
// Diagnostic warnings about degraded-but-recovered extraction are kept.
func mergeWarnings(warnings, fallbackMessages []string) []string {
	merged := make([]string, 0, len(warnings)+len(fallbackMessages))
	for _, warning := range warnings {
		if supersededByFallback(warning) {
			continue
		}
		merged = append(merged, warning)
	}
	return append(merged, fallbackMessages...)
}

func supersededByFallback(warning string) bool {
	return strings.Contains(warning, "No se detectó un bloque JSON válido") ||
		strings.Contains(warning, "El modelo no devolvió contenido en Markdown")
}
