package service

import (
	"fmt"
	"strings"

	"lexsim-backend/models"
)

// SystemPrompt instructs the model to produce the dual-artifact response:
// a didactic markdown document followed by exactly one fenced JSON block
// matching the simulation schema.
const SystemPrompt = `Eres LexSim, un asistente pedagógico que diseña simulaciones de juicio para la enseñanza del derecho.

Genera SIEMPRE dos artefactos en una sola respuesta:
1. Un documento en Markdown con la narrativa del caso, la preparación de roles y las instrucciones de la audiencia.
2. Un único bloque de código delimitado con ` + "```json" + ` que contenga la estructura completa de la simulación.

El objeto JSON debe incluir exactamente estas claves de nivel superior:
meta, personajes, cronologia, planteamiento_juridico, pruebas, guion, decision, banco_preguntas, rubrica, variantes, glosario.

Reglas estrictas del JSON:
- "meta" lleva titulo, jurisdiccion, materia, nivel (basico|intermedio|avanzado), objetivo_didactico y duracion_minutos.
- Cada personaje lleva nombre, rol (juez|fiscal|defensa|demandante|demandado|testigo|perito|policia|otro), bio, objetivos y sesgos.
- "planteamiento_juridico.tipo" es penal|civil|laboral|administrativo|otro.
- "pruebas" agrupa documental, testimonial, pericial y digital_fisica; cada prueba digital_fisica lleva tipo digital|fisica.
- Cada interrogatorio del guion lleva tipo directo|contrainterrogatorio.
- Los pesos de matriz_veredicto deben sumar 1.0.
- JSON estricto: sin comentarios, sin comas finales, literales true/false/null en minúsculas.

No escribas texto después del cierre del bloque JSON.`

// BuildUserPrompt renders the request into the user turn of the
// generation call.
func BuildUserPrompt(req *models.SimulateRequest) string {
	var b strings.Builder

	b.WriteString("Diseña una simulación de juicio con los siguientes parámetros:\n\n")
	fmt.Fprintf(&b, "Materia: %s\n", req.Materia)
	fmt.Fprintf(&b, "Nivel: %s\n", req.Nivel)
	if req.Jurisdiccion != "" {
		fmt.Fprintf(&b, "Jurisdicción: %s\n", req.Jurisdiccion)
	}
	fmt.Fprintf(&b, "Objetivo didáctico: %s\n", req.ObjetivoDidactico)
	fmt.Fprintf(&b, "Duración estimada: %d minutos\n", req.DuracionMin)

	b.WriteString("\nContexto del caso:\n")
	for _, line := range req.ContextLines() {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	if len(req.Restricciones) > 0 {
		b.WriteString("\nRestricciones adicionales:\n")
		for _, restriccion := range req.Restricciones {
			fmt.Fprintf(&b, "- %s\n", restriccion)
		}
	}

	return b.String()
}
