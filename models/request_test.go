package models_test

import (
	"strings"
	"testing"

	"lexsim-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestSimulateRequestNormalizeDefaults(t *testing.T) {
	req := &models.SimulateRequest{Contexto: "a\nb\nc"}
	req.Normalize()

	assert.Equal(t, models.SubjectPenal, req.Materia)
	assert.Equal(t, models.LevelIntermedio, req.Nivel)
	assert.Equal(t, "practicar objeciones y contrainterrogatorio", req.ObjetivoDidactico)
	assert.Equal(t, 90, req.DuracionMin)
}

func TestSimulateRequestNormalizeKeepsProvidedValues(t *testing.T) {
	req := &models.SimulateRequest{
		Contexto:          "a\nb\nc",
		Materia:           models.SubjectCivil,
		Nivel:             models.LevelAvanzado,
		ObjetivoDidactico: "valorar prueba documental",
		DuracionMin:       120,
	}
	req.Normalize()

	assert.Equal(t, models.SubjectCivil, req.Materia)
	assert.Equal(t, models.LevelAvanzado, req.Nivel)
	assert.Equal(t, "valorar prueba documental", req.ObjetivoDidactico)
	assert.Equal(t, 120, req.DuracionMin)
}

func TestSimulateRequestValidate(t *testing.T) {
	base := func() *models.SimulateRequest {
		req := &models.SimulateRequest{
			Contexto: "Primera línea del contexto.\nSegunda línea del contexto.\nTercera línea del contexto.",
		}
		req.Normalize()
		return req
	}

	tests := []struct {
		name    string
		mutate  func(*models.SimulateRequest)
		wantErr error
	}{
		{
			name:   "valid request",
			mutate: func(r *models.SimulateRequest) {},
		},
		{
			name:    "too few context lines",
			mutate:  func(r *models.SimulateRequest) { r.Contexto = "una\ndos" },
			wantErr: models.ErrContextTooShort,
		},
		{
			name: "blank lines do not count",
			mutate: func(r *models.SimulateRequest) {
				r.Contexto = "una\n\n  \ndos"
			},
			wantErr: models.ErrContextTooShort,
		},
		{
			name: "too many context lines",
			mutate: func(r *models.SimulateRequest) {
				r.Contexto = strings.Repeat("línea del caso\n", 11)
			},
			wantErr: models.ErrContextTooLong,
		},
		{
			name:    "invalid materia",
			mutate:  func(r *models.SimulateRequest) { r.Materia = "mercantil" },
			wantErr: models.ErrInvalidMateria,
		},
		{
			name:    "invalid nivel",
			mutate:  func(r *models.SimulateRequest) { r.Nivel = "experto" },
			wantErr: models.ErrInvalidNivel,
		},
		{
			name:    "duration below minimum",
			mutate:  func(r *models.SimulateRequest) { r.DuracionMin = 15 },
			wantErr: models.ErrInvalidDuration,
		},
		{
			name:    "duration above maximum",
			mutate:  func(r *models.SimulateRequest) { r.DuracionMin = 600 },
			wantErr: models.ErrInvalidDuration,
		},
		{
			name:    "blank objective",
			mutate:  func(r *models.SimulateRequest) { r.ObjetivoDidactico = "   " },
			wantErr: models.ErrMissingObjective,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(req)
			err := req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestContextLines(t *testing.T) {
	req := &models.SimulateRequest{Contexto: "  una  \n\ndos\r\ntres \n"}
	assert.Equal(t, []string{"una", "dos", "tres"}, req.ContextLines())
}
