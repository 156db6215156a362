package fallback

import (
	"fmt"
	"strings"

	"lexsim-backend/models"
)

const (
	maxKeyFacts    = 5
	minFactLength  = 8
	maxContextSize = 280
)

// genericJurisdiction labels requests that did not specify a jurisdiction
const genericJurisdiction = "Jurisdicción genérica"

// roleGuidance suggests how to staff the exercise for each subject matter
var roleGuidance = map[models.SubjectMatter]string{
	models.SubjectPenal:          "Asignar fiscalía y defensa con un testigo presencial; el juez modera las objeciones.",
	models.SubjectCivil:          "Asignar demandante y demandado con énfasis en la carga de la prueba documental.",
	models.SubjectLaboral:        "Asignar trabajador y empleador; priorizar testimonios sobre condiciones laborales.",
	models.SubjectAdministrativo: "Asignar administrado y autoridad; centrar el debate en la legalidad del acto.",
}

const defaultRoleGuidance = "Asignar dos partes contrapuestas y un tercero imparcial que modere la audiencia."

// riskGuidance lists the main procedural risk to vigilar per subject matter
var riskGuidance = map[models.SubjectMatter]string{
	models.SubjectPenal:          "Vigilar la cadena de custodia y la presunción de inocencia durante todo el ejercicio.",
	models.SubjectCivil:          "Vigilar la pertinencia de las pruebas documentales y la congruencia de las pretensiones.",
	models.SubjectLaboral:        "Vigilar la inversión de la carga probatoria y los plazos procesales aplicables.",
	models.SubjectAdministrativo: "Vigilar la motivación del acto impugnado y el agotamiento de la vía administrativa.",
}

const defaultRiskGuidance = "Vigilar el equilibrio entre las partes y el respeto del debido proceso."

// learningFocus maps each level onto a checklist of pedagogical goals
var learningFocus = map[models.Level][]string{
	models.LevelBasico: {
		"Identificar los roles procesales y su función en la audiencia.",
		"Formular preguntas directas simples a los testigos.",
		"Reconocer las objeciones más comunes.",
	},
	models.LevelIntermedio: {
		"Construir una teoría del caso coherente con las pruebas disponibles.",
		"Practicar el contrainterrogatorio con preguntas cerradas.",
		"Fundamentar objeciones y responder a las de la contraparte.",
	},
	models.LevelAvanzado: {
		"Integrar prueba pericial y digital en la teoría del caso.",
		"Anticipar la estrategia de la contraparte y preparar refutaciones.",
		"Argumentar estándares probatorios en los alegatos de cierre.",
	},
}

var defaultLearningFocus = []string{
	"Comprender la estructura general de una audiencia.",
	"Participar activamente en el rol asignado.",
}

// normalizeContext collapses the context whitespace and bounds its size so
// the fallback never echoes an arbitrarily long blob.
func normalizeContext(context string) string {
	snippet := strings.Join(strings.Fields(context), " ")
	if runes := []rune(snippet); len(runes) > maxContextSize {
		snippet = string(runes[:maxContextSize])
	}
	return strings.TrimSpace(snippet)
}

// keyFacts splits the case context into sentence-like fragments and keeps
// up to five of at least eight characters, preserving input order.
func keyFacts(context string) []string {
	fragments := strings.FieldsFunc(context, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var facts []string
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if len(fragment) >= minFactLength {
			facts = append(facts, fragment)
		}
		if len(facts) == maxKeyFacts {
			break
		}
	}
	return facts
}

// BuildMarkdown deterministically assembles a substitute document from the
// request when the model did not return usable markdown. Sections are
// concatenated in a fixed order; identical requests yield identical output.
func BuildMarkdown(req *models.SimulateRequest) string {
	jurisdiccion := req.Jurisdiccion
	if jurisdiccion == "" {
		jurisdiccion = genericJurisdiction
	}
	contexto := normalizeContext(req.Contexto)
	if contexto == "" {
		contexto = "El contexto proporcionado fue muy breve, se recomienda revisarlo."
	}

	roles, ok := roleGuidance[req.Materia]
	if !ok {
		roles = defaultRoleGuidance
	}
	riesgos, ok := riskGuidance[req.Materia]
	if !ok {
		riesgos = defaultRiskGuidance
	}
	enfoque, ok := learningFocus[req.Nivel]
	if !ok {
		enfoque = defaultLearningFocus
	}

	var b strings.Builder
	b.WriteString("# Simulación de respaldo LexSim\n\n")
	b.WriteString("_Contenido generado automáticamente debido a un fallo del modelo._\n\n")

	b.WriteString("## Resumen del caso\n")
	fmt.Fprintf(&b, "- **Jurisdicción:** %s\n", jurisdiccion)
	fmt.Fprintf(&b, "- **Materia:** %s\n", req.Materia)
	fmt.Fprintf(&b, "- **Nivel:** %s\n", req.Nivel)
	fmt.Fprintf(&b, "- **Objetivo didáctico:** %s\n", req.ObjetivoDidactico)
	fmt.Fprintf(&b, "- **Duración estimada:** %d minutos\n\n", req.DuracionMin)

	b.WriteString("### Contexto sintetizado\n")
	b.WriteString(contexto)
	b.WriteString("\n\n")

	if facts := keyFacts(req.Contexto); len(facts) > 0 {
		b.WriteString("### Hechos clave\n")
		for _, fact := range facts {
			fmt.Fprintf(&b, "- %s\n", fact)
		}
		b.WriteString("\n")
	}

	b.WriteString("### Orientación de roles\n")
	b.WriteString(roles)
	b.WriteString("\n\n")

	b.WriteString("### Riesgos procesales\n")
	b.WriteString(riesgos)
	b.WriteString("\n\n")

	b.WriteString("### Enfoque de aprendizaje\n")
	for _, item := range enfoque {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	b.WriteString("\n")

	b.WriteString("### Actividades sugeridas\n")
	b.WriteString("1. Analizar los roles propuestos en la estructura JSON de respaldo.\n")
	b.WriteString("2. Discutir los riesgos procesales principales y las medidas de mitigación.\n")
	b.WriteString("3. Elaborar argumentos introductorios y de cierre para ambas partes.\n\n")

	b.WriteString("---\n")
	b.WriteString("_Este material de contingencia asegura que la práctica pedagógica pueda continuar aun sin la salida del modelo._")

	return b.String()
}
