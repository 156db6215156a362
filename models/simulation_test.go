package models_test

import (
	"testing"

	"lexsim-backend/fallback"
	"lexsim-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSimulation(t *testing.T) *models.Simulation {
	t.Helper()
	req := &models.SimulateRequest{
		Contexto: "Hecho uno del caso.\nHecho dos del caso.\nHecho tres del caso.",
	}
	req.Normalize()
	sim := fallback.BuildSimulation(req)
	require.NoError(t, models.ValidateSimulation(sim))
	return sim
}

func TestValidateSimulationNil(t *testing.T) {
	assert.Error(t, models.ValidateSimulation(nil))
}

func TestValidateSimulationRejectsMissingRequiredField(t *testing.T) {
	sim := validSimulation(t)
	sim.Meta.Titulo = ""

	err := models.ValidateSimulation(sim)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "titulo")
}

func TestValidateSimulationRejectsEnumViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Simulation)
	}{
		{
			name:   "nivel outside closed set",
			mutate: func(s *models.Simulation) { s.Meta.Nivel = "experto" },
		},
		{
			name:   "rol outside closed set",
			mutate: func(s *models.Simulation) { s.Personajes[0].Rol = "abogado" },
		},
		{
			name:   "tipo de planteamiento outside closed set",
			mutate: func(s *models.Simulation) { s.PlanteamientoJuridico.Tipo = "mercantil" },
		},
		{
			name:   "tipo de prueba digital outside closed set",
			mutate: func(s *models.Simulation) { s.Pruebas.DigitalFisica[0].Tipo = "virtual" },
		},
		{
			name:   "tipo de interrogatorio outside closed set",
			mutate: func(s *models.Simulation) { s.Guion.Interrogatorios[0].Tipo = "redirecto" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := validSimulation(t)
			tt.mutate(sim)
			assert.Error(t, models.ValidateSimulation(sim))
		})
	}
}

func TestValidateSimulationRejectsMalformedListElement(t *testing.T) {
	sim := validSimulation(t)
	sim.Rubrica[0].PuntajeMax = 0

	assert.Error(t, models.ValidateSimulation(sim))
}

func TestValidateSimulationRejectsEmptyEvidenceCategory(t *testing.T) {
	sim := validSimulation(t)
	sim.Pruebas.Documental = nil

	assert.Error(t, models.ValidateSimulation(sim))
}

func TestValidateSimulationRejectsNonPositiveWeight(t *testing.T) {
	sim := validSimulation(t)
	sim.Decision.MatrizVeredicto[1].Peso = 0

	assert.Error(t, models.ValidateSimulation(sim))
}

func TestValidateSimulationReportsFirstViolationOnly(t *testing.T) {
	sim := validSimulation(t)
	sim.Meta.Titulo = ""
	sim.Meta.Jurisdiccion = ""

	err := models.ValidateSimulation(sim)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "titulo")
	assert.NotContains(t, err.Error(), "jurisdiccion")
}
