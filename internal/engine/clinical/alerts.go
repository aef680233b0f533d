package clinical

import (
	"fmt"
	"strings"

	"github.com/acolhedu/acolhe-backend/internal/types"
)

// ResultadoCombinado consolidates any subset of instrument interpretations
// into one overall verdict.
type ResultadoCombinado struct {
	Nivel              types.NivelAlerta `json:"nivel"`
	RequerAcaoImediata bool              `json:"requer_acao_imediata"`
	Mensagem           string            `json:"mensagem"`
}

// AnalisarAlertasCombinados takes one or more interpretations (any subset of
// the instruments) and returns the maximum alert level on the VERDE <
// AMARELO < LARANJA < VERMELHO scale. Immediate action is required exactly
// when the maximum is VERMELHO.
func AnalisarAlertasCombinados(interpretacoes ...Interpretacao) ResultadoCombinado {
	if len(interpretacoes) == 0 {
		return ResultadoCombinado{
			Nivel:    types.NivelVerde,
			Mensagem: "Nenhum instrumento avaliado",
		}
	}

	nivel := types.NivelVerde
	var criticos []string
	for _, i := range interpretacoes {
		nivel = types.MaiorNivel(nivel, i.NivelAlerta)
		if i.NivelAlerta == types.NivelVermelho {
			criticos = append(criticos, string(i.Instrumento))
		}
	}

	out := ResultadoCombinado{Nivel: nivel}
	switch nivel {
	case types.NivelVerde:
		out.Mensagem = "Todos os instrumentos dentro da faixa de normalidade"
	case types.NivelVermelho:
		out.RequerAcaoImediata = true
		out.Mensagem = fmt.Sprintf("Atenção imediata necessária: nível crítico em %s", strings.Join(criticos, ", "))
	default:
		out.Mensagem = "Sinais de atenção em um ou mais instrumentos, acompanhamento recomendado"
	}
	return out
}

// CatalogoAlerta is the fixed presentation of one behavioural alert type.
type CatalogoAlerta struct {
	Titulo        string
	Descricao     string
	Recomendacoes []string
}

var catalogoAlertas = map[types.TipoAlerta]CatalogoAlerta{
	types.AlertaRiscoEvasao: {
		Titulo:    "Risco de evasão escolar",
		Descricao: "Padrão de respostas e bem-estar compatível com risco de abandono",
		Recomendacoes: []string{
			"Agendar conversa individual com o estudante",
			"Acionar a equipe de orientação educacional",
			"Envolver a família no acompanhamento",
		},
	},
	types.AlertaDificuldadeAprendizagem: {
		Titulo:    "Indicativo de dificuldade de aprendizagem",
		Descricao: "Traço latente estimado muito abaixo do esperado para a faixa",
		Recomendacoes: []string{
			"Encaminhar para avaliação pedagógica detalhada",
			"Oferecer reforço nas áreas com menor desempenho",
			"Reavaliar após o ciclo de reforço",
		},
	},
	types.AlertaBaixoEngajamento: {
		Titulo:    "Baixo engajamento com a avaliação",
		Descricao: "Respostas dadas em tempo incompatível com leitura dos itens",
		Recomendacoes: []string{
			"Verificar as condições de aplicação da avaliação",
			"Conversar com o estudante sobre a importância do instrumento",
			"Considerar reaplicação em outro momento",
		},
	},
	types.AlertaAnsiedadeAvaliativa: {
		Titulo:    "Ansiedade avaliativa",
		Descricao: "Sinais de ansiedade combinados com latências irregulares durante a avaliação",
		Recomendacoes: []string{
			"Aplicar avaliações em ambiente de menor pressão",
			"Orientar técnicas de regulação emocional",
			"Acompanhar evolução nos próximos ciclos",
			"Considerar apoio psicológico escolar",
		},
	},
	types.AlertaFadigaCognitiva: {
		Titulo:    "Fadiga cognitiva durante a sessão",
		Descricao: "Tempo de resposta cresceu de forma acentuada ao longo da sessão",
		Recomendacoes: []string{
			"Dividir avaliações longas em blocos menores",
			"Aplicar sessões em horários de maior disposição",
			"Revisar a carga de atividades do estudante",
		},
	},
	types.AlertaInconsistenciaRespostas: {
		Titulo:    "Inconsistência nas respostas",
		Descricao: "Dispersão interna das respostas acima do esperado para o instrumento",
		Recomendacoes: []string{
			"Reaplicar o instrumento em outro momento",
			"Verificar compreensão dos enunciados",
			"Cruzar com observações do professor em sala",
		},
	},
	types.AlertaTempoExcessivo: {
		Titulo:    "Tempo de resposta excessivo",
		Descricao: "Tempo médio por item muito acima do esperado",
		Recomendacoes: []string{
			"Verificar dificuldades de leitura ou compreensão",
			"Avaliar condições do dispositivo utilizado",
			"Considerar aplicação assistida",
		},
	},
	types.AlertaPadraoAleatorio: {
		Titulo:    "Padrão de respostas aleatório",
		Descricao: "Alternância de respostas incompatível com engajamento genuíno",
		Recomendacoes: []string{
			"Invalidar a sessão para fins de triagem",
			"Reaplicar com orientação presencial",
			"Conversar com o estudante sobre o objetivo da avaliação",
		},
	},
}

// Catalogo returns the fixed title, description and recommendations of an
// alert type.
func Catalogo(tipo types.TipoAlerta) (CatalogoAlerta, bool) {
	c, ok := catalogoAlertas[tipo]
	return c, ok
}
