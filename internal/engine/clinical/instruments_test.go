package clinical

import (
	"strings"
	"testing"

	"github.com/acolhedu/acolhe-backend/internal/types"
)

func TestCalcularScoreEscala(t *testing.T) {
	if got := CalcularScoreEscala(nil); got != 0 {
		t.Fatalf("empty submission sums to %d, want 0", got)
	}
	respostas := make([]RespostaEscala, 9)
	for i := range respostas {
		respostas[i] = RespostaEscala{Valor: 2}
	}
	if got := CalcularScoreEscala(respostas); got != 18 {
		t.Fatalf("9 answers of 2 sum to %d, want 18", got)
	}
}

func TestInterpretarPHQ9(t *testing.T) {
	item9Zero := 0
	item9Dois := 2

	cases := []struct {
		name      string
		score     int
		item9     *int
		categoria types.CategoriaSeveridade
		nivel     types.NivelAlerta
		acao      bool
		critico   bool
	}{
		{"minima", 3, nil, types.SeveridadeMinima, types.NivelVerde, false, false},
		{"leve", 7, nil, types.SeveridadeLeve, types.NivelAmarelo, false, false},
		{"moderada", 12, nil, types.SeveridadeModerada, types.NivelLaranja, false, false},
		{"moderadamente_grave", 17, nil, types.SeveridadeModeradamenteGrave, types.NivelVermelho, true, false},
		{"grave", 23, nil, types.SeveridadeGrave, types.NivelVermelho, true, false},
		{"item9_sem_ideacao", 3, &item9Zero, types.SeveridadeMinima, types.NivelVerde, false, false},
		// Item 9 ≥ 2 escalates even a low total score.
		{"item9_ideacao_sobrepoe", 5, &item9Dois, types.SeveridadeLeve, types.NivelVermelho, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := InterpretarPHQ9(tc.score, tc.item9)
			if got.Categoria != tc.categoria {
				t.Fatalf("Categoria=%s, want %s", got.Categoria, tc.categoria)
			}
			if got.NivelAlerta != tc.nivel {
				t.Fatalf("NivelAlerta=%s, want %s", got.NivelAlerta, tc.nivel)
			}
			if got.RequerAcaoImediata != tc.acao {
				t.Fatalf("RequerAcaoImediata=%v, want %v", got.RequerAcaoImediata, tc.acao)
			}
			if tc.critico != strings.Contains(got.Descricao, "ALERTA CRÍTICO") {
				t.Fatalf("Descricao=%q, critical-marker expectation %v", got.Descricao, tc.critico)
			}
			if got.ScoreMaximo != ScoreMaximoPHQ9 {
				t.Fatalf("ScoreMaximo=%d, want %d", got.ScoreMaximo, ScoreMaximoPHQ9)
			}
		})
	}
}

func TestInterpretarGAD7(t *testing.T) {
	cases := []struct {
		name      string
		score     int
		categoria types.CategoriaSeveridade
		nivel     types.NivelAlerta
		acao      bool
	}{
		{"minima", 0, types.SeveridadeMinima, types.NivelVerde, false},
		{"leve", 6, types.SeveridadeLeve, types.NivelAmarelo, false},
		{"moderada", 12, types.SeveridadeModerada, types.NivelLaranja, false},
		{"grave", 18, types.SeveridadeGrave, types.NivelVermelho, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := InterpretarGAD7(tc.score)
			if got.Categoria != tc.categoria || got.NivelAlerta != tc.nivel || got.RequerAcaoImediata != tc.acao {
				t.Fatalf("InterpretarGAD7(%d)=%+v, want %s/%s/acao=%v",
					tc.score, got, tc.categoria, tc.nivel, tc.acao)
			}
		})
	}
}

func TestInterpretarWHO5(t *testing.T) {
	cases := []struct {
		name       string
		score      int
		percentual int
		categoria  types.CategoriaSeveridade
		nivel      types.NivelAlerta
		acao       bool
	}{
		// Inverted polarity: low well-being is the severe end.
		{"grave", 5, 20, types.SeveridadeGrave, types.NivelVermelho, true},
		{"grave_limite", 7, 28, types.SeveridadeGrave, types.NivelVermelho, true},
		{"moderada", 12, 48, types.SeveridadeModerada, types.NivelLaranja, false},
		{"leve", 13, 52, types.SeveridadeLeve, types.NivelAmarelo, false},
		{"preservado", 20, 80, types.SeveridadeMinima, types.NivelVerde, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := InterpretarWHO5(tc.score)
			if got.Percentual != tc.percentual {
				t.Fatalf("Percentual=%d, want %d", got.Percentual, tc.percentual)
			}
			if got.Categoria != tc.categoria || got.NivelAlerta != tc.nivel || got.RequerAcaoImediata != tc.acao {
				t.Fatalf("InterpretarWHO5(%d)=%+v, want %s/%s/acao=%v",
					tc.score, got, tc.categoria, tc.nivel, tc.acao)
			}
		})
	}
}
