package clinical

import (
	"testing"

	"github.com/acolhedu/acolhe-backend/internal/engine/irt"
	"github.com/acolhedu/acolhe-backend/internal/types"
)

func resposta(valor, tempo float64) irt.Resposta {
	return irt.Resposta{Valor: valor, TempoResposta: tempo}
}

func temSinal(sinais []Sinal, tipo types.TipoAlerta) bool {
	for _, s := range sinais {
		if s.Tipo == tipo {
			return true
		}
	}
	return false
}

func TestDetectarPadroesVazio(t *testing.T) {
	if got := DetectarPadroes(nil); len(got) != 0 {
		t.Fatalf("no responses must yield no signals, got %v", got)
	}
}

func TestDetectarTempoExcessivo(t *testing.T) {
	respostas := []irt.Resposta{
		resposta(1, 40), resposta(1, 35), resposta(0, 50),
	}
	sinais := DetectarPadroes(respostas)
	if !temSinal(sinais, types.AlertaTempoExcessivo) {
		t.Fatalf("mean latency above threshold must flag TEMPO_EXCESSIVO, got %v", sinais)
	}
	for _, s := range sinais {
		if s.Tipo == types.AlertaTempoExcessivo && s.Nivel != types.NivelLaranja {
			t.Fatalf("TEMPO_EXCESSIVO level=%s, want LARANJA", s.Nivel)
		}
	}
}

func TestDetectarBaixoEngajamento(t *testing.T) {
	var rapidas []irt.Resposta
	for i := 0; i < 6; i++ {
		rapidas = append(rapidas, resposta(1, 0.8))
	}
	if sinais := DetectarPadroes(rapidas); !temSinal(sinais, types.AlertaBaixoEngajamento) {
		t.Fatalf("sub-second answering must flag BAIXO_ENGAJAMENTO, got %v", sinais)
	}

	// Below the floor the engagement judgement is not attempted.
	if sinais := DetectarPadroes(rapidas[:4]); temSinal(sinais, types.AlertaBaixoEngajamento) {
		t.Fatalf("too few responses must not flag engagement, got %v", sinais)
	}
}

func TestDetectarFadigaCognitiva(t *testing.T) {
	var respostas []irt.Resposta
	for i := 0; i < 3; i++ {
		respostas = append(respostas, resposta(1, 5))
	}
	for i := 0; i < 3; i++ {
		respostas = append(respostas, resposta(1, 8))
	}
	for i := 0; i < 3; i++ {
		respostas = append(respostas, resposta(1, 15))
	}
	sinais := DetectarPadroes(respostas)
	if !temSinal(sinais, types.AlertaFadigaCognitiva) {
		t.Fatalf("last third 3x slower than first must flag FADIGA_COGNITIVA, got %v", sinais)
	}
	if temSinal(sinais, types.AlertaTempoExcessivo) || temSinal(sinais, types.AlertaBaixoEngajamento) {
		t.Fatalf("latency within normal band must not add other signals, got %v", sinais)
	}
}

func TestDetectarPadraoAleatorio(t *testing.T) {
	var alternadas []irt.Resposta
	for i := 0; i < 10; i++ {
		v := 0.0
		if i%2 == 0 {
			v = 1.0
		}
		alternadas = append(alternadas, resposta(v, 4))
	}
	if sinais := DetectarPadroes(alternadas); !temSinal(sinais, types.AlertaPadraoAleatorio) {
		t.Fatalf("full alternation must flag PADRAO_ALEATORIO, got %v", sinais)
	}

	// Nine responses are below the detector floor even at full alternation.
	if sinais := DetectarPadroes(alternadas[:9]); temSinal(sinais, types.AlertaPadraoAleatorio) {
		t.Fatalf("short sessions must not flag randomness, got %v", sinais)
	}
}

func TestSinaisClinicosDificuldadeAprendizagem(t *testing.T) {
	sinais := SinaisClinicos(-2.5, true, nil, nil)
	if !temSinal(sinais, types.AlertaDificuldadeAprendizagem) {
		t.Fatalf("theta below -2 must flag DIFICULDADE_APRENDIZAGEM, got %v", sinais)
	}

	if sinais := SinaisClinicos(-2.5, false, nil, nil); len(sinais) != 0 {
		t.Fatalf("without a theta estimate nothing is flagged, got %v", sinais)
	}
	if sinais := SinaisClinicos(-1.5, true, nil, nil); len(sinais) != 0 {
		t.Fatalf("theta above the threshold must not flag, got %v", sinais)
	}
}

func TestSinaisClinicosRiscoEvasao(t *testing.T) {
	baixa := InterpretarWHO5(10) // LARANJA
	sinais := SinaisClinicos(0, true, []Interpretacao{baixa}, nil)
	if !temSinal(sinais, types.AlertaRiscoEvasao) {
		t.Fatalf("compromised well-being must flag RISCO_EVASAO, got %v", sinais)
	}

	leve := InterpretarWHO5(15) // AMARELO
	if sinais := SinaisClinicos(0, true, []Interpretacao{leve}, nil); temSinal(sinais, types.AlertaRiscoEvasao) {
		t.Fatalf("mild reduction must not flag RISCO_EVASAO, got %v", sinais)
	}
}

func TestSinaisClinicosAnsiedadeAvaliativa(t *testing.T) {
	ansiedade := InterpretarGAD7(12) // MODERADA
	irregulares := []irt.Resposta{
		resposta(1, 1), resposta(1, 1), resposta(1, 1), resposta(1, 1), resposta(1, 30),
	}
	sinais := SinaisClinicos(0, true, []Interpretacao{ansiedade}, irregulares)
	if !temSinal(sinais, types.AlertaAnsiedadeAvaliativa) {
		t.Fatalf("moderate anxiety with irregular latencies must flag, got %v", sinais)
	}

	regulares := []irt.Resposta{
		resposta(1, 5), resposta(1, 5), resposta(1, 5), resposta(1, 5), resposta(1, 5),
	}
	if sinais := SinaisClinicos(0, true, []Interpretacao{ansiedade}, regulares); temSinal(sinais, types.AlertaAnsiedadeAvaliativa) {
		t.Fatalf("steady latencies must not flag evaluation anxiety, got %v", sinais)
	}
}

func TestSinaisClinicosInconsistencia(t *testing.T) {
	dispersas := []irt.Resposta{
		resposta(0, 4), resposta(1, 4), resposta(0, 4), resposta(1, 4), resposta(1, 4),
	}
	sinais := SinaisClinicos(0, false, nil, dispersas)
	if !temSinal(sinais, types.AlertaInconsistenciaRespostas) {
		t.Fatalf("high answer dispersion must flag INCONSISTENCIA_RESPOSTAS, got %v", sinais)
	}

	estaveis := []irt.Resposta{
		resposta(1, 4), resposta(1, 4), resposta(1, 4), resposta(1, 4), resposta(1, 4),
	}
	if sinais := SinaisClinicos(0, false, nil, estaveis); temSinal(sinais, types.AlertaInconsistenciaRespostas) {
		t.Fatalf("stable answers must not flag inconsistency, got %v", sinais)
	}
}
