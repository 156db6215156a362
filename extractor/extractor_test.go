package extractor

import (
	"encoding/json"
	"strings"
	"testing"

	"lexsim-backend/fallback"
	"lexsim-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRequest() *models.SimulateRequest {
	req := &models.SimulateRequest{
		Contexto: "Un contrato de suministro incumplido.\nEl proveedor alega fuerza mayor.\nExisten correos contradictorios.",
	}
	req.Normalize()
	return req
}

// validRecordJSON returns a schema-valid simulation payload as JSON text
func validRecordJSON(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(fallback.BuildSimulation(testRequest()))
	require.NoError(t, err)
	return string(data)
}

func fence(payload string) string {
	return "```json\n" + payload + "\n```"
}

func TestExtractFencedRecordRoundTrip(t *testing.T) {
	payload := validRecordJSON(t)
	raw := "Introducción del caso\n\n" + fence(payload) + "\n\nNotas finales"

	markdown, simulation, warnings := New(zap.NewNop()).Extract(raw)

	require.NotNil(t, simulation)
	assert.Equal(t, fallback.BuildSimulation(testRequest()), simulation)
	assert.Contains(t, markdown, "Introducción del caso")
	assert.Contains(t, markdown, "Notas finales")
	assert.Empty(t, warnings)
}

func TestExtractRecoversTrailingCommaSilently(t *testing.T) {
	payload := validRecordJSON(t)
	// Inject a trailing comma right before the closing brace.
	broken := payload[:len(payload)-1] + ",\n}"
	raw := "Intro\n" + fence(broken)

	markdown, simulation, warnings := New(zap.NewNop()).Extract(raw)

	require.NotNil(t, simulation)
	assert.Equal(t, "Intro", markdown)
	assert.Empty(t, warnings)
}

func TestExtractRecoversComments(t *testing.T) {
	payload := validRecordJSON(t)
	commented := "{ // generado automáticamente\n" + payload[1:]
	raw := "Intro\n" + fence(commented)

	_, simulation, warnings := New(zap.NewNop()).Extract(raw)

	require.NotNil(t, simulation)
	assert.Empty(t, warnings)
}

func TestExtractUnfencedRecordViaBraceScan(t *testing.T) {
	payload := validRecordJSON(t)
	raw := "El modelo olvidó la valla:\n" + payload + "\nfin"

	markdown, simulation, warnings := New(zap.NewNop()).Extract(raw)

	require.NotNil(t, simulation)
	assert.Contains(t, markdown, "El modelo olvidó la valla:")
	assert.NotContains(t, markdown, `"personajes"`)
	assert.Empty(t, warnings)
}

func TestExtractJSONOnlyInput(t *testing.T) {
	raw := fence(validRecordJSON(t))

	markdown, simulation, warnings := New(zap.NewNop()).Extract(raw)

	require.NotNil(t, simulation)
	assert.Equal(t, "", markdown)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningOnlyJSON, warnings[0])
}

func TestExtractProseOnlyInput(t *testing.T) {
	raw := "some prose with no braces at all"

	markdown, simulation, warnings := New(zap.NewNop()).Extract(raw)

	assert.Nil(t, simulation)
	assert.Equal(t, raw, markdown)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningNoJSONBlock, warnings[0])
}

func TestExtractEmptyInput(t *testing.T) {
	markdown, simulation, warnings := New(zap.NewNop()).Extract("")

	assert.Nil(t, simulation)
	assert.Equal(t, "", markdown)
	assert.Equal(t, []string{WarningNoJSONBlock, WarningEmptyBoth}, warnings)
}

func TestExtractInvalidFencedBlock(t *testing.T) {
	raw := "Texto del documento\n" + fence(`{"meta": "esto no cumple el esquema"}`)

	markdown, simulation, warnings := New(zap.NewNop()).Extract(raw)

	assert.Nil(t, simulation)
	assert.Equal(t, "Texto del documento", markdown)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningInvalidJSON, warnings[0])
}

func TestExtractValidJSONFailingSchema(t *testing.T) {
	// Parsing succeeds but schema validation rejects the record; the span
	// is still excised from the document.
	raw := `Análisis previo {"a": 1} análisis posterior`

	markdown, simulation, warnings := New(zap.NewNop()).Extract(raw)

	assert.Nil(t, simulation)
	assert.Equal(t, "Análisis previo  análisis posterior", markdown)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningInvalidJSON, warnings[0])
}

func TestExtractRejectsEnumViolation(t *testing.T) {
	payload := validRecordJSON(t)
	tampered := strings.Replace(payload, `"nivel":"intermedio"`, `"nivel":"experto"`, 1)
	require.NotEqual(t, payload, tampered)

	_, simulation, warnings := New(zap.NewNop()).Extract("Intro\n" + fence(tampered))

	assert.Nil(t, simulation)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningInvalidJSON, warnings[0])
}
