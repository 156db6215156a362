package models

import (
	"errors"
	"strings"
)

// Context bounds enforced on simulation requests
const (
	MinContextLines = 3
	MaxContextLines = 10
	MinDurationMin  = 30
	MaxDurationMin  = 480
)

var (
	ErrContextTooShort  = errors.New("el contexto debe contener al menos 3 líneas")
	ErrContextTooLong   = errors.New("el contexto no debe exceder 10 líneas")
	ErrInvalidMateria   = errors.New("materia inválida")
	ErrInvalidNivel     = errors.New("nivel inválido")
	ErrInvalidDuration  = errors.New("la duración debe estar entre 30 y 480 minutos")
	ErrMissingObjective = errors.New("el objetivo didáctico no puede quedar vacío")
)

// SimulateRequest represents the request body for generating a simulation
type SimulateRequest struct {
	Contexto          string        `json:"contexto" binding:"required"`
	Jurisdiccion      string        `json:"jurisdiccion"`
	Materia           SubjectMatter `json:"materia"`
	Nivel             Level         `json:"nivel"`
	ObjetivoDidactico string        `json:"objetivo_didactico"`
	DuracionMin       int           `json:"duracion_min"`
	Restricciones     []string      `json:"restricciones"`
}

// Normalize fills the optional request fields with their documented defaults
func (r *SimulateRequest) Normalize() {
	if r.Materia == "" {
		r.Materia = SubjectPenal
	}
	if r.Nivel == "" {
		r.Nivel = LevelIntermedio
	}
	if strings.TrimSpace(r.ObjetivoDidactico) == "" {
		r.ObjetivoDidactico = "practicar objeciones y contrainterrogatorio"
	}
	if r.DuracionMin == 0 {
		r.DuracionMin = 90
	}
}

// ContextLines returns the non-empty lines of the case context
func (r *SimulateRequest) ContextLines() []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(r.Contexto), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}

// Validate enforces the request invariants after normalization: a case
// context of 3 to 10 non-empty lines, closed enum values and a duration
// inside the allowed window.
func (r *SimulateRequest) Validate() error {
	lines := r.ContextLines()
	if len(lines) < MinContextLines {
		return ErrContextTooShort
	}
	if len(lines) > MaxContextLines {
		return ErrContextTooLong
	}
	switch r.Materia {
	case SubjectPenal, SubjectCivil, SubjectLaboral, SubjectAdministrativo, SubjectOtro:
	default:
		return ErrInvalidMateria
	}
	switch r.Nivel {
	case LevelBasico, LevelIntermedio, LevelAvanzado:
	default:
		return ErrInvalidNivel
	}
	if r.DuracionMin < MinDurationMin || r.DuracionMin > MaxDurationMin {
		return ErrInvalidDuration
	}
	if strings.TrimSpace(r.ObjetivoDidactico) == "" {
		return ErrMissingObjective
	}
	return nil
}

// SimulateResponse represents the response body of a simulation request.
// Simulation is nil only transiently inside the service; the API always
// replies with both artifacts, falling back to generated substitutes.
type SimulateResponse struct {
	Markdown   string      `json:"markdown"`
	Simulation *Simulation `json:"json"`
	Warnings   []string    `json:"warnings"`
}
