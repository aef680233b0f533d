package clinical

import (
	"math"

	"github.com/acolhedu/acolhe-backend/internal/engine/irt"
	"github.com/acolhedu/acolhe-backend/internal/types"
)

// Sinal is one detected behavioural/risk pattern, prioritized by the same
// four-colour ordinal used for clinical alerts.
type Sinal struct {
	Tipo  types.TipoAlerta
	Nivel types.NivelAlerta
}

const (
	tempoExcessivoMedio   = 30.0 // seconds per item
	engajamentoMinimo     = 1.5  // seconds per item
	fadigaRazao           = 1.8
	fadigaMinRespostas    = 9
	aleatorioMinRespostas = 10
	aleatorioTaxa         = 0.7
)

// DetectarPadroes scans the ordered response stream of a session for
// behavioural patterns. Rules are deliberately simple threshold checks; the
// taxonomy and prioritization matter more than detector sophistication.
func DetectarPadroes(respostas []irt.Resposta) []Sinal {
	var sinais []Sinal
	n := len(respostas)
	if n == 0 {
		return sinais
	}

	media := tempoMedio(respostas)
	if media > tempoExcessivoMedio {
		sinais = append(sinais, Sinal{Tipo: types.AlertaTempoExcessivo, Nivel: types.NivelLaranja})
	}
	if n >= MinRespostasEngajamento && media < engajamentoMinimo {
		sinais = append(sinais, Sinal{Tipo: types.AlertaBaixoEngajamento, Nivel: types.NivelAmarelo})
	}

	if n >= fadigaMinRespostas {
		terco := n / 3
		inicio := tempoMedio(respostas[:terco])
		fim := tempoMedio(respostas[n-terco:])
		if inicio > 0 && fim/inicio > fadigaRazao {
			sinais = append(sinais, Sinal{Tipo: types.AlertaFadigaCognitiva, Nivel: types.NivelAmarelo})
		}
	}

	if n >= aleatorioMinRespostas && taxaAlternancia(respostas) >= aleatorioTaxa {
		sinais = append(sinais, Sinal{Tipo: types.AlertaPadraoAleatorio, Nivel: types.NivelLaranja})
	}

	return sinais
}

// MinRespostasEngajamento is the floor below which latency-based engagement
// judgements are not attempted.
const MinRespostasEngajamento = 5

// SinaisClinicos derives finalization-time signals from the ability estimate
// and instrument interpretations.
func SinaisClinicos(theta float64, temTheta bool, interpretacoes []Interpretacao, respostas []irt.Resposta) []Sinal {
	var sinais []Sinal

	if temTheta && theta < -2.0 {
		sinais = append(sinais, Sinal{Tipo: types.AlertaDificuldadeAprendizagem, Nivel: types.NivelLaranja})
	}

	for _, i := range interpretacoes {
		switch i.Instrumento {
		case types.InstrumentoWHO5:
			if i.NivelAlerta.Ordem() >= types.NivelLaranja.Ordem() {
				sinais = append(sinais, Sinal{Tipo: types.AlertaRiscoEvasao, Nivel: i.NivelAlerta})
			}
		case types.InstrumentoGAD7:
			if i.Categoria == types.SeveridadeModerada || i.Categoria == types.SeveridadeGrave {
				if desvioTempo(respostas) > tempoMedio(respostas) {
					sinais = append(sinais, Sinal{Tipo: types.AlertaAnsiedadeAvaliativa, Nivel: i.NivelAlerta})
				}
			}
		}
	}

	if len(respostas) >= MinRespostasEngajamento && desvioValores(respostas) > 0.45 {
		sinais = append(sinais, Sinal{Tipo: types.AlertaInconsistenciaRespostas, Nivel: types.NivelAmarelo})
	}

	return sinais
}

func tempoMedio(respostas []irt.Resposta) float64 {
	if len(respostas) == 0 {
		return 0
	}
	total := 0.0
	for _, r := range respostas {
		total += r.TempoResposta
	}
	return total / float64(len(respostas))
}

func desvioTempo(respostas []irt.Resposta) float64 {
	n := len(respostas)
	if n < 2 {
		return 0
	}
	media := tempoMedio(respostas)
	soma := 0.0
	for _, r := range respostas {
		d := r.TempoResposta - media
		soma += d * d
	}
	return math.Sqrt(soma / float64(n-1))
}

func desvioValores(respostas []irt.Resposta) float64 {
	n := len(respostas)
	if n < 2 {
		return 0
	}
	media := 0.0
	for _, r := range respostas {
		media += r.Valor
	}
	media /= float64(n)
	soma := 0.0
	for _, r := range respostas {
		d := r.Valor - media
		soma += d * d
	}
	return math.Sqrt(soma / float64(n-1))
}

// taxaAlternancia measures how often adjacent binarized responses flip.
func taxaAlternancia(respostas []irt.Resposta) float64 {
	if len(respostas) < 2 {
		return 0
	}
	flips := 0
	for i := 1; i < len(respostas); i++ {
		if respostas[i].Acerto() != respostas[i-1].Acerto() {
			flips++
		}
	}
	return float64(flips) / float64(len(respostas)-1)
}
