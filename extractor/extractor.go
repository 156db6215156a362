package extractor

import (
	"encoding/json"
	"strings"

	"lexsim-backend/models"

	"github.com/kaptinlin/jsonrepair"
	"go.uber.org/zap"
)

// Warning texts surfaced to API clients. The wording is user facing and
// kept in Spanish; the service layer matches on these values when a
// fallback supersedes the underlying cause.
const (
	WarningNoJSONBlock = "No se detectó un bloque JSON válido en la respuesta del modelo."
	WarningInvalidJSON = "No se pudo validar el bloque JSON generado. Se entrega solo el Markdown."
	WarningEmptyBoth   = "El modelo no devolvió contenido en Markdown ni proporcionó un JSON estructurado válido."
	WarningOnlyJSON    = "El modelo no devolvió contenido en Markdown. Se entrega solo el JSON estructurado disponible."
)

// Extractor splits raw model output into a markdown document and a
// validated simulation record. It is stateless apart from its logger and
// safe for concurrent use.
type Extractor struct {
	logger *zap.Logger
}

// New creates an extractor that logs degradations through the given logger
func New(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger.With(zap.String("component", "extractor"))}
}

// sanitizer is one stage of the repair chain. Each stage receives the
// original candidate; returning an error skips the stage.
type sanitizer func(string) (string, error)

func identityStage(text string) (string, error) { return text, nil }

func sanitizeStage(text string) (string, error) { return sanitize(text), nil }

func literalStage(text string) (string, error) { return normalizeLiterals(text), nil }

func repairStage(text string) (string, error) { return jsonrepair.JSONRepair(text) }

// stages are ordered least to most aggressive. The first stage whose
// output parses and validates wins; later stages are never consulted.
var stages = []sanitizer{identityStage, sanitizeStage, literalStage, repairStage}

// Extract splits raw model output into (markdown, simulation, warnings).
//
// The simulation pointer is nil when no payload was located or no
// sanitizer stage produced a schema-valid record; both degradations are
// reported as warnings, never as errors, so the caller can always fill
// the gaps with fallback content.
func (e *Extractor) Extract(raw string) (string, *models.Simulation, []string) {
	warnings := make([]string, 0, 2)

	block, blockSpan := findJSONBlock(raw)
	var simulation *models.Simulation

	if blockSpan != nil {
		parsed, lastErr := e.tryParse(block)
		if parsed != nil {
			simulation = parsed
		} else {
			warnings = append(warnings, WarningInvalidJSON)
			e.logger.Warn("JSON extraction failed after sanitization", zap.Error(lastErr))
		}
	} else {
		warnings = append(warnings, WarningNoJSONBlock)
	}

	markdown := raw
	if blockSpan != nil {
		markdown = raw[:blockSpan.start] + raw[blockSpan.end:]
	}
	markdown = strings.TrimSpace(markdown)

	if markdown == "" {
		if simulation == nil {
			warnings = append(warnings, WarningEmptyBoth)
		} else {
			warnings = append(warnings, WarningOnlyJSON)
		}
	}

	return markdown, simulation, warnings
}

// tryParse runs the sanitizer chain over the candidate and returns the
// first record that both parses as strict JSON and passes schema
// validation, together with the last error seen when none does.
func (e *Extractor) tryParse(candidate string) (*models.Simulation, error) {
	var lastErr error

	for _, stage := range stages {
		text, err := stage(candidate)
		if err != nil {
			lastErr = err
			continue
		}

		var sim models.Simulation
		if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &sim); err != nil {
			lastErr = err
			continue
		}
		if err := models.ValidateSimulation(&sim); err != nil {
			lastErr = err
			continue
		}
		return &sim, nil
	}

	return nil, lastErr
}
