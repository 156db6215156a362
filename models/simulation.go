package models

// SubjectMatter represents the legal subject matter of a case
type SubjectMatter string

const (
	SubjectPenal          SubjectMatter = "penal"
	SubjectCivil          SubjectMatter = "civil"
	SubjectLaboral        SubjectMatter = "laboral"
	SubjectAdministrativo SubjectMatter = "administrativo"
	SubjectOtro           SubjectMatter = "otro"
)

// Level represents the pedagogical complexity level of a simulation
type Level string

const (
	LevelBasico     Level = "basico"
	LevelIntermedio Level = "intermedio"
	LevelAvanzado   Level = "avanzado"
)

// Role represents the procedural role of a participant
type Role string

const (
	RoleJuez       Role = "juez"
	RoleFiscal     Role = "fiscal"
	RoleDefensa    Role = "defensa"
	RoleDemandante Role = "demandante"
	RoleDemandado  Role = "demandado"
	RoleTestigo    Role = "testigo"
	RolePerito     Role = "perito"
	RolePolicia    Role = "policia"
	RoleOtro       Role = "otro"
)

// ExaminationType represents the kind of witness examination
type ExaminationType string

const (
	ExaminationDirecto ExaminationType = "directo"
	ExaminationContra  ExaminationType = "contrainterrogatorio"
)

// EvidenceKind distinguishes digital from physical evidence items
type EvidenceKind string

const (
	EvidenceDigital EvidenceKind = "digital"
	EvidenceFisica  EvidenceKind = "fisica"
)

// Meta holds the descriptive header of a generated simulation.
// Note: materia is free text here (the model may refine it); the closed
// enum only applies to the request and the legal framing type.
type Meta struct {
	Titulo            string `json:"titulo" validate:"required"`
	Jurisdiccion      string `json:"jurisdiccion" validate:"required"`
	Materia           string `json:"materia" validate:"required"`
	Nivel             Level  `json:"nivel" validate:"required,oneof=basico intermedio avanzado"`
	ObjetivoDidactico string `json:"objetivo_didactico" validate:"required"`
	DuracionMinutos   int    `json:"duracion_minutos" validate:"required,gt=0"`
}

// Participant represents a role-tagged actor in the simulation
type Participant struct {
	Nombre    string   `json:"nombre" validate:"required"`
	Rol       Role     `json:"rol" validate:"required,oneof=juez fiscal defensa demandante demandado testigo perito policia otro"`
	Bio       string   `json:"bio" validate:"required"`
	Objetivos []string `json:"objetivos" validate:"required"`
	Sesgos    []string `json:"sesgos" validate:"required"`
}

// TimelineEvent represents one timestamped entry of the case chronology
type TimelineEvent struct {
	T      string `json:"t" validate:"required"`
	Evento string `json:"evento" validate:"required"`
}

// LegalFraming represents the legal posture of the case
type LegalFraming struct {
	Tipo                SubjectMatter `json:"tipo" validate:"required,oneof=penal civil laboral administrativo otro"`
	CargosOPretensiones []string      `json:"cargos_o_pretensiones" validate:"required"`
	EstandarProbatorio  string        `json:"estandar_probatorio" validate:"required"`
	Notas               string        `json:"notas" validate:"required"`
}

// DocumentaryEvidence represents one documentary evidence item
type DocumentaryEvidence struct {
	ID                   string   `json:"id" validate:"required"`
	Descripcion          string   `json:"descripcion" validate:"required"`
	Origen               string   `json:"origen" validate:"required"`
	AutenticidadCustodia string   `json:"autenticidad_custodia" validate:"required"`
	PosiblesObjeciones   []string `json:"posibles_objeciones" validate:"required"`
}

// TestimonialEvidence represents one witness-based evidence item
type TestimonialEvidence struct {
	ID                       string   `json:"id" validate:"required"`
	Testigo                  string   `json:"testigo" validate:"required"`
	Alcance                  string   `json:"alcance" validate:"required"`
	RiesgosCredibilidad      []string `json:"riesgos_credibilidad" validate:"required"`
	ContrapreguntasSugeridas []string `json:"contrapreguntas_sugeridas" validate:"required"`
}

// ExpertEvidence represents one expert-report evidence item
type ExpertEvidence struct {
	ID      string `json:"id" validate:"required"`
	Area    string `json:"area" validate:"required"`
	Metodo  string `json:"metodo" validate:"required"`
	Limites string `json:"limites" validate:"required"`
	Validez string `json:"validez" validate:"required"`
}

// DigitalPhysicalEvidence represents one digital or physical evidence item
type DigitalPhysicalEvidence struct {
	ID             string            `json:"id" validate:"required"`
	Tipo           EvidenceKind      `json:"tipo" validate:"required,oneof=digital fisica"`
	Descripcion    string            `json:"descripcion" validate:"required"`
	Hash           string            `json:"hash" validate:"required"`
	Metadatos      map[string]string `json:"metadatos" validate:"required"`
	CadenaCustodia string            `json:"cadena_custodia" validate:"required"`
}

// EvidenceSet groups the four evidence categories of a simulation
type EvidenceSet struct {
	Documental    []DocumentaryEvidence     `json:"documental" validate:"required,dive"`
	Testimonial   []TestimonialEvidence     `json:"testimonial" validate:"required,dive"`
	Pericial      []ExpertEvidence          `json:"pericial" validate:"required,dive"`
	DigitalFisica []DigitalPhysicalEvidence `json:"digital_fisica" validate:"required,dive"`
}

// Examination represents a scripted direct or cross examination
type Examination struct {
	Tipo      ExaminationType `json:"tipo" validate:"required,oneof=directo contrainterrogatorio"`
	AQuien    string          `json:"a_quien" validate:"required"`
	Preguntas []string        `json:"preguntas" validate:"required"`
}

// Objection represents a typical objection with its legal ground
type Objection struct {
	Objecion   string `json:"objecion" validate:"required"`
	Fundamento string `json:"fundamento" validate:"required"`
}

// Statement holds the paired opening or closing statements of both sides
type Statement struct {
	Parte1 string `json:"parte_1" validate:"required"`
	Parte2 string `json:"parte_2" validate:"required"`
}

// Script represents the full hearing script of the simulation
type Script struct {
	InstruccionesInicialesJuez string        `json:"instrucciones_iniciales_juez" validate:"required"`
	Apertura                   Statement     `json:"apertura"`
	Interrogatorios            []Examination `json:"interrogatorios" validate:"required,dive"`
	ObjecionesTipicas          []Objection   `json:"objeciones_tipicas" validate:"required,dive"`
	Cierre                     Statement     `json:"cierre"`
	InstruccionesFinalesJuez   string        `json:"instrucciones_finales_juez" validate:"required"`
}

// VerdictCriterion represents one weighted row of the verdict matrix
type VerdictCriterion struct {
	Criterio      string  `json:"criterio" validate:"required"`
	Peso          float64 `json:"peso" validate:"required,gt=0"`
	Observaciones string  `json:"observaciones" validate:"required"`
}

// AlternativeOutcome represents one alternative resolution scenario
type AlternativeOutcome struct {
	Escenario   string `json:"escenario" validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
}

// Decision groups the deliberation criteria, verdict matrix and alternatives
type Decision struct {
	Criterios              []string             `json:"criterios" validate:"required"`
	MatrizVeredicto        []VerdictCriterion   `json:"matriz_veredicto" validate:"required,dive"`
	ResultadosAlternativos []AlternativeOutcome `json:"resultados_alternativos" validate:"required,dive"`
}

// RubricCriterion represents one evaluation criterion with leveled descriptors
type RubricCriterion struct {
	Criterio   string            `json:"criterio" validate:"required"`
	Niveles    map[string]string `json:"niveles" validate:"required"`
	PuntajeMax int               `json:"puntaje_max" validate:"required,gt=0"`
}

// GlossaryEntry represents one glossary term with its definition
type GlossaryEntry struct {
	Termino    string `json:"termino" validate:"required"`
	Definicion string `json:"definicion" validate:"required"`
}

// Simulation is the fully structured record of one generated case
// simulation. It is only ever handed to callers after passing
// ValidateSimulation; a record that fails validation is discarded
// wholesale, never patched.
type Simulation struct {
	Meta                  Meta              `json:"meta"`
	Personajes            []Participant     `json:"personajes" validate:"required,dive"`
	Cronologia            []TimelineEvent   `json:"cronologia" validate:"required,dive"`
	PlanteamientoJuridico LegalFraming      `json:"planteamiento_juridico"`
	Pruebas               EvidenceSet       `json:"pruebas"`
	Guion                 Script            `json:"guion"`
	Decision              Decision          `json:"decision"`
	BancoPreguntas        []string          `json:"banco_preguntas" validate:"required"`
	Rubrica               []RubricCriterion `json:"rubrica" validate:"required,dive"`
	Variantes             []string          `json:"variantes" validate:"required"`
	Glosario              []GlossaryEntry   `json:"glosario" validate:"required,dive"`
}
