package fallback

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"lexsim-backend/models"
)

// fallbackEpoch anchors the substitute timeline. A fixed instant keeps the
// generated record byte-identical across calls.
var fallbackEpoch = time.Date(2035, time.January, 1, 9, 0, 0, 0, time.UTC)

// timelineEvents are the standing events of the substitute chronology,
// expressed as minute offsets from the epoch.
var timelineEvents = []struct {
	evento string
	offset int
}{
	{"Inicio de audiencia de acusación", 0},
	{"Presentación de pruebas y objeciones", 30},
	{"Deliberación y conclusiones pedagógicas", 90},
}

// hashContext derives a short traceability token from the normalized
// context: the first 16 hex characters of its SHA-256 digest. The raw
// context never appears in the record, only the digest prefix.
func hashContext(context string) string {
	digest := sha256.Sum256([]byte(context))
	return hex.EncodeToString(digest[:])[:16]
}

func buildTimeline() []models.TimelineEvent {
	timeline := make([]models.TimelineEvent, 0, len(timelineEvents))
	for _, event := range timelineEvents {
		moment := fallbackEpoch.Add(time.Duration(event.offset) * time.Minute)
		timeline = append(timeline, models.TimelineEvent{
			T:      moment.Format("2006-01-02 15:04"),
			Evento: event.evento,
		})
	}
	return timeline
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

// framingType narrows the request subject matter to the closed legal
// framing enum, collapsing anything unrecognized to "otro".
func framingType(materia models.SubjectMatter) models.SubjectMatter {
	switch materia {
	case models.SubjectPenal, models.SubjectCivil, models.SubjectLaboral, models.SubjectAdministrativo:
		return materia
	default:
		return models.SubjectOtro
	}
}

// BuildSimulation deterministically synthesizes a complete, schema-valid
// simulation record from the request. No randomness, no clock reads and no
// external calls: identical requests always produce identical records.
func BuildSimulation(req *models.SimulateRequest) *models.Simulation {
	jurisdiccion := req.Jurisdiccion
	if jurisdiccion == "" {
		jurisdiccion = genericJurisdiction
	}
	contextSnippet := normalizeContext(req.Contexto)
	if contextSnippet == "" {
		contextSnippet = "Contexto resumido no disponible"
	}
	contextHash := hashContext(contextSnippet)

	claimSnippet := contextSnippet
	if runes := []rune(claimSnippet); len(runes) > 60 {
		claimSnippet = string(runes[:60])
	}

	return &models.Simulation{
		Meta: models.Meta{
			Titulo:            fmt.Sprintf("Simulación de contingencia: %s", capitalize(string(req.Materia))),
			Jurisdiccion:      jurisdiccion,
			Materia:           string(req.Materia),
			Nivel:             req.Nivel,
			ObjetivoDidactico: req.ObjetivoDidactico,
			DuracionMinutos:   req.DuracionMin,
		},
		Personajes: []models.Participant{
			{
				Nombre:    "Juez(a) de Control LexSim",
				Rol:       models.RoleJuez,
				Bio:       "Facilitador ficticio que modera el ejercicio cuando el modelo falla.",
				Objetivos: []string{"Garantizar continuidad de la práctica", "Modelar decisiones imparciales"},
				Sesgos:    []string{"Preferencia por material estructurado"},
			},
			{
				Nombre:    "Fiscal sustituto",
				Rol:       models.RoleFiscal,
				Bio:       "Representación académica que usa el contexto proporcionado para sustentar cargos.",
				Objetivos: []string{"Vincular hechos a la teoría del caso", "Aprovechar el material de respaldo"},
				Sesgos:    []string{"Confianza en informes escritos"},
			},
			{
				Nombre:    "Defensor(a) de oficio académico",
				Rol:       models.RoleDefensa,
				Bio:       "Profesional ficticio encargado de impugnar la versión acusatoria usando solo el contexto.",
				Objetivos: []string{"Resaltar dudas razonables", "Proteger el debido proceso"},
				Sesgos:    []string{"Estrategias prudentes"},
			},
			{
				Nombre:    "Testigo contextual",
				Rol:       models.RoleTestigo,
				Bio:       "Figura creada para narrar los hechos descritos en el contexto proporcionado.",
				Objetivos: []string{"Describir hechos relevantes", "Responder a contrainterrogatorios"},
				Sesgos:    []string{"Recuerdos influenciados por el estrés"},
			},
		},
		Cronologia: buildTimeline(),
		PlanteamientoJuridico: models.LegalFraming{
			Tipo:                framingType(req.Materia),
			CargosOPretensiones: []string{fmt.Sprintf("Análisis de responsabilidad según contexto: %s", claimSnippet)},
			EstandarProbatorio:  "Determinable según normatividad aplicable",
			Notas:               "Escenario generado automáticamente por ausencia de salida del modelo.",
		},
		Pruebas: models.EvidenceSet{
			Documental: []models.DocumentaryEvidence{
				{
					ID:                   "DOC-FB-01",
					Descripcion:          "Resumen documental construido con la información disponible en el contexto.",
					Origen:               "Archivo de respaldo LexSim",
					AutenticidadCustodia: "Cadena hipotética verificada para fines académicos",
					PosiblesObjeciones:   []string{"Pertinencia", "Fundamento insuficiente"},
				},
			},
			Testimonial: []models.TestimonialEvidence{
				{
					ID:                  "TES-FB-01",
					Testigo:             "Testigo contextual",
					Alcance:             "Relata los hechos descritos en el contexto de la solicitud.",
					RiesgosCredibilidad: []string{"Memoria dependiente de notas de respaldo"},
					ContrapreguntasSugeridas: []string{
						"Precise circunstancias observadas",
						"Indique fuentes de su conocimiento",
					},
				},
			},
			Pericial: []models.ExpertEvidence{
				{
					ID:      "PER-FB-01",
					Area:    "Reconstrucción de hechos",
					Metodo:  "Análisis de consistencia del contexto",
					Limites: "Datos incompletos al provenir de un fallback",
					Validez: "Únicamente para práctica académica",
				},
			},
			DigitalFisica: []models.DigitalPhysicalEvidence{
				{
					ID:          "DIG-FB-01",
					Tipo:        models.EvidenceDigital,
					Descripcion: "Archivo simulado que resume el contexto aportado.",
					Hash:        contextHash,
					Metadatos: map[string]string{
						"generado_por": "LexSim fallback",
						"fiabilidad":   "moderada",
					},
					CadenaCustodia: "Registro automático interno (uso educativo)",
				},
			},
		},
		Guion: models.Script{
			InstruccionesInicialesJuez: "Se informa a los participantes que se utiliza material de respaldo debido a un error del modelo.",
			Apertura: models.Statement{
				Parte1: "La fiscalía describe los hechos apoyándose en el contexto y los documentos de respaldo.",
				Parte2: "La defensa señala posibles fallas en la cadena causal y enfatiza la necesidad de mayor corroboración.",
			},
			Interrogatorios: []models.Examination{
				{
					Tipo:   models.ExaminationDirecto,
					AQuien: "Testigo contextual",
					Preguntas: []string{
						"Detalle qué observó según el contexto proporcionado",
						"Explique cómo reaccionaron los involucrados",
					},
				},
				{
					Tipo:   models.ExaminationContra,
					AQuien: "Testigo contextual",
					Preguntas: []string{
						"Confirme las limitaciones de su recuerdo",
						"Señale si recibió instrucciones previas al testimonio",
					},
				},
			},
			ObjecionesTipicas: []models.Objection{
				{
					Objecion:   "leading",
					Fundamento: "Se sugiere la respuesta al testigo durante el fallback",
				},
				{
					Objecion:   "hearsay",
					Fundamento: "La declaración depende de información secundaria compilada en el fallback",
				},
			},
			Cierre: models.Statement{
				Parte1: "La fiscalía solicita valorar la coherencia del contexto y la simulación de pruebas.",
				Parte2: "La defensa pide absolver ante la ausencia de corroboración directa del modelo.",
			},
			InstruccionesFinalesJuez: "Los estudiantes deliberarán considerando las limitaciones de este material de respaldo.",
		},
		Decision: models.Decision{
			Criterios: []string{
				"Coherencia interna del contexto",
				"Consistencia de testimonios simulados",
				"Respeto por garantías procesales en el ejercicio",
			},
			MatrizVeredicto: []models.VerdictCriterion{
				{
					Criterio:      "Análisis del contexto",
					Peso:          0.4,
					Observaciones: "Evaluar qué elementos faltan por ausencia del modelo",
				},
				{
					Criterio:      "Calidad de los interrogatorios",
					Peso:          0.3,
					Observaciones: "Considerar si las preguntas cubren todos los hechos",
				},
				{
					Criterio:      "Argumentación final",
					Peso:          0.3,
					Observaciones: "Valorar la incorporación crítica del material de respaldo",
				},
			},
			ResultadosAlternativos: []models.AlternativeOutcome{
				{
					Escenario:   "A",
					Descripcion: "Se dicta responsabilidad simbólica con base en el material de respaldo",
				},
				{
					Escenario:   "B",
					Descripcion: "Se absuelve ante las limitaciones derivadas del uso del fallback",
				},
			},
		},
		BancoPreguntas: []string{
			"¿Cómo se adaptan los roles cuando se trabaja con un fallback?",
			"¿Qué riesgos probatorios emergen al no contar con evidencia completa?",
			"¿Qué estrategias de objeción son prioritarias en este escenario?",
		},
		Rubrica: []models.RubricCriterion{
			{
				Criterio: "Dominio del caso de respaldo",
				Niveles: map[string]string{
					"excelente": "Integra críticamente el fallback con referencias normativas.",
					"bueno":     "Utiliza adecuadamente el fallback identificando riesgos.",
					"basico":    "Depende casi exclusivamente del material entregado sin análisis crítico.",
				},
				PuntajeMax: 10,
			},
		},
		Variantes: []string{
			"Reformular el caso a materia administrativa usando el mismo fallback.",
			"Solicitar a los estudiantes generar pruebas adicionales para reforzar la simulación.",
		},
		Glosario: []models.GlossaryEntry{
			{
				Termino:    "Fallback pedagógico",
				Definicion: "Material generado automáticamente para continuar la simulación cuando falla el modelo.",
			},
			{
				Termino:    "Cadena de custodia simulada",
				Definicion: "Registro ficticio que preserva trazabilidad en ejercicios académicos.",
			},
		},
	}
}
