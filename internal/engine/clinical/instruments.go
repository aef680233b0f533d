// Package clinical maps fixed-form instrument scores (PHQ-9, GAD-7, WHO-5) to
// severity bands and alert levels, and synthesizes consolidated alerts. All
// functions are pure: raw score in, verdict out.
package clinical

import (
	"fmt"
	"math"

	"github.com/acolhedu/acolhe-backend/internal/types"
)

const (
	ScoreMaximoPHQ9 = 27
	ScoreMaximoGAD7 = 21
	ScoreMaximoWHO5 = 25
)

// RespostaEscala is one answer of a fixed-form scale submission.
type RespostaEscala struct {
	Valor int `json:"valor"`
}

// CalcularScoreEscala sums the raw values of a scale submission. An empty
// submission sums to zero.
func CalcularScoreEscala(respostas []RespostaEscala) int {
	total := 0
	for _, r := range respostas {
		total += r.Valor
	}
	return total
}

// Interpretacao is the clinical verdict for one instrument.
type Interpretacao struct {
	Instrumento        types.InstrumentoClinico  `json:"instrumento"`
	Score              int                       `json:"score"`
	ScoreMaximo        int                       `json:"score_maximo"`
	Percentual         int                       `json:"percentual"`
	Categoria          types.CategoriaSeveridade `json:"categoria"`
	NivelAlerta        types.NivelAlerta         `json:"nivel_alerta"`
	RequerAcaoImediata bool                      `json:"requer_acao_imediata"`
	Descricao          string                    `json:"descricao"`
}

func percentual(score, maximo int) int {
	return int(math.Round(float64(score) / float64(maximo) * 100))
}

// InterpretarPHQ9 classifies a PHQ-9 depression score (0–27). item9 is the
// self-harm ideation item: when present and ≥ 2 the verdict is forced to
// VERMELHO with immediate action, regardless of the total score.
func InterpretarPHQ9(score int, item9 *int) Interpretacao {
	i := Interpretacao{
		Instrumento: types.InstrumentoPHQ9,
		Score:       score,
		ScoreMaximo: ScoreMaximoPHQ9,
		Percentual:  percentual(score, ScoreMaximoPHQ9),
	}
	switch {
	case score <= 4:
		i.Categoria = types.SeveridadeMinima
		i.NivelAlerta = types.NivelVerde
		i.Descricao = "Sintomas depressivos mínimos ou ausentes"
	case score <= 9:
		i.Categoria = types.SeveridadeLeve
		i.NivelAlerta = types.NivelAmarelo
		i.Descricao = "Sintomas depressivos leves"
	case score <= 14:
		i.Categoria = types.SeveridadeModerada
		i.NivelAlerta = types.NivelLaranja
		i.Descricao = "Sintomas depressivos moderados"
	case score <= 19:
		i.Categoria = types.SeveridadeModeradamenteGrave
		i.NivelAlerta = types.NivelVermelho
		i.RequerAcaoImediata = true
		i.Descricao = "Sintomas depressivos moderadamente graves"
	default:
		i.Categoria = types.SeveridadeGrave
		i.NivelAlerta = types.NivelVermelho
		i.RequerAcaoImediata = true
		i.Descricao = "Sintomas depressivos graves"
	}
	if item9 != nil && *item9 >= 2 {
		i.NivelAlerta = types.NivelVermelho
		i.RequerAcaoImediata = true
		i.Descricao = fmt.Sprintf("ALERTA CRÍTICO: ideação de autolesão relatada no item 9. %s", i.Descricao)
	}
	return i
}

// InterpretarGAD7 classifies a GAD-7 anxiety score (0–21).
func InterpretarGAD7(score int) Interpretacao {
	i := Interpretacao{
		Instrumento: types.InstrumentoGAD7,
		Score:       score,
		ScoreMaximo: ScoreMaximoGAD7,
		Percentual:  percentual(score, ScoreMaximoGAD7),
	}
	switch {
	case score <= 4:
		i.Categoria = types.SeveridadeMinima
		i.NivelAlerta = types.NivelVerde
		i.Descricao = "Sintomas de ansiedade mínimos ou ausentes"
	case score <= 9:
		i.Categoria = types.SeveridadeLeve
		i.NivelAlerta = types.NivelAmarelo
		i.Descricao = "Sintomas de ansiedade leves"
	case score <= 14:
		i.Categoria = types.SeveridadeModerada
		i.NivelAlerta = types.NivelLaranja
		i.Descricao = "Sintomas de ansiedade moderados"
	default:
		i.Categoria = types.SeveridadeGrave
		i.NivelAlerta = types.NivelVermelho
		i.RequerAcaoImediata = true
		i.Descricao = "Sintomas de ansiedade graves"
	}
	return i
}

// InterpretarWHO5 classifies a WHO-5 well-being score (0–25). Polarity is
// inverted relative to PHQ-9/GAD-7: higher is better, so the bands run over
// the percent-of-maximum.
func InterpretarWHO5(score int) Interpretacao {
	pct := percentual(score, ScoreMaximoWHO5)
	i := Interpretacao{
		Instrumento: types.InstrumentoWHO5,
		Score:       score,
		ScoreMaximo: ScoreMaximoWHO5,
		Percentual:  pct,
	}
	switch {
	case pct <= 28:
		i.Categoria = types.SeveridadeGrave
		i.NivelAlerta = types.NivelVermelho
		i.RequerAcaoImediata = true
		i.Descricao = "Bem-estar gravemente comprometido"
	case pct <= 50:
		i.Categoria = types.SeveridadeModerada
		i.NivelAlerta = types.NivelLaranja
		i.Descricao = "Bem-estar moderadamente comprometido"
	case pct <= 75:
		i.Categoria = types.SeveridadeLeve
		i.NivelAlerta = types.NivelAmarelo
		i.Descricao = "Bem-estar levemente reduzido"
	default:
		i.Categoria = types.SeveridadeMinima
		i.NivelAlerta = types.NivelVerde
		i.Descricao = "Bem-estar preservado"
	}
	return i
}
