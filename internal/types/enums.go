package types

// EstadoSessao is the lifecycle state of one assessment attempt.
type EstadoSessao string

const (
	SessaoEmAndamento EstadoSessao = "EM_ANDAMENTO"
	SessaoPausada     EstadoSessao = "PAUSADA"
	SessaoFinalizada  EstadoSessao = "FINALIZADA"
)

// NivelAlerta is the four-colour ordinal triage scale shared by clinical
// interpretation and behavioural alerts.
type NivelAlerta string

const (
	NivelVerde    NivelAlerta = "VERDE"
	NivelAmarelo  NivelAlerta = "AMARELO"
	NivelLaranja  NivelAlerta = "LARANJA"
	NivelVermelho NivelAlerta = "VERMELHO"
)

var ordemNivel = map[NivelAlerta]int{
	NivelVerde:    0,
	NivelAmarelo:  1,
	NivelLaranja:  2,
	NivelVermelho: 3,
}

// Ordem returns the ordinal rank of the level (VERDE < AMARELO < LARANJA < VERMELHO).
func (n NivelAlerta) Ordem() int {
	return ordemNivel[n]
}

// MaiorNivel returns the more severe of the two levels.
func MaiorNivel(a, b NivelAlerta) NivelAlerta {
	if b.Ordem() > a.Ordem() {
		return b
	}
	return a
}

// CategoriaSeveridade is the ordinal severity band of a clinical instrument score.
type CategoriaSeveridade string

const (
	SeveridadeMinima             CategoriaSeveridade = "MINIMA"
	SeveridadeLeve               CategoriaSeveridade = "LEVE"
	SeveridadeModerada           CategoriaSeveridade = "MODERADA"
	SeveridadeModeradamenteGrave CategoriaSeveridade = "MODERADAMENTE_GRAVE"
	SeveridadeGrave              CategoriaSeveridade = "GRAVE"
)

// InstrumentoClinico names a fixed-form screening instrument.
type InstrumentoClinico string

const (
	InstrumentoPHQ9 InstrumentoClinico = "PHQ9"
	InstrumentoGAD7 InstrumentoClinico = "GAD7"
	InstrumentoWHO5 InstrumentoClinico = "WHO5"
)

// TipoAlerta is the closed set of behavioural/risk alert categories.
type TipoAlerta string

const (
	AlertaRiscoEvasao             TipoAlerta = "RISCO_EVASAO"
	AlertaDificuldadeAprendizagem TipoAlerta = "DIFICULDADE_APRENDIZAGEM"
	AlertaBaixoEngajamento        TipoAlerta = "BAIXO_ENGAJAMENTO"
	AlertaAnsiedadeAvaliativa     TipoAlerta = "ANSIEDADE_AVALIATIVA"
	AlertaFadigaCognitiva         TipoAlerta = "FADIGA_COGNITIVA"
	AlertaInconsistenciaRespostas TipoAlerta = "INCONSISTENCIA_RESPOSTAS"
	AlertaTempoExcessivo          TipoAlerta = "TEMPO_EXCESSIVO"
	AlertaPadraoAleatorio         TipoAlerta = "PADRAO_ALEATORIO"
)

// TiposAlerta lists every alert type, in display order.
var TiposAlerta = []TipoAlerta{
	AlertaRiscoEvasao,
	AlertaDificuldadeAprendizagem,
	AlertaBaixoEngajamento,
	AlertaAnsiedadeAvaliativa,
	AlertaFadigaCognitiva,
	AlertaInconsistenciaRespostas,
	AlertaTempoExcessivo,
	AlertaPadraoAleatorio,
}

// StatusAlerta tracks downstream human review of an alert. The engine only
// ever creates alerts as ATIVO; every other status comes from reviewers.
type StatusAlerta string

const (
	AlertaAtivo            StatusAlerta = "ATIVO"
	AlertaVisualizado      StatusAlerta = "VISUALIZADO"
	AlertaEmAcompanhamento StatusAlerta = "EM_ACOMPANHAMENTO"
	AlertaResolvido        StatusAlerta = "RESOLVIDO"
)

// CategoriaItem groups calibrated items by what they measure.
type CategoriaItem string

const (
	CategoriaConcentracao CategoriaItem = "CONCENTRACAO"
	CategoriaBemEstar     CategoriaItem = "BEM_ESTAR"
	CategoriaAnsiedade    CategoriaItem = "ANSIEDADE"
	CategoriaHumor        CategoriaItem = "HUMOR"
)
