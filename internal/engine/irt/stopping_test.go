package irt

import (
	"strings"
	"testing"
)

func TestAvaliarParada(t *testing.T) {
	cases := []struct {
		name         string
		numRespostas int
		sem          float64
		poolVazio    bool
		wantParar    bool
		wantMotivo   string
	}{
		{
			// Hard floor: precision alone never stops an early session.
			name:         "quatro_respostas_sem_baixo_continua",
			numRespostas: 4,
			sem:          0.25,
			wantParar:    false,
		},
		{
			name:         "zero_respostas_continua",
			numRespostas: 0,
			sem:          0.1,
			wantParar:    false,
		},
		{
			name:         "vinte_respostas_para_por_maximo",
			numRespostas: 20,
			sem:          0.9,
			wantParar:    true,
			wantMotivo:   "máximo",
		},
		{
			name:         "acima_do_maximo_para",
			numRespostas: 25,
			sem:          0.9,
			wantParar:    true,
			wantMotivo:   "máximo",
		},
		{
			name:         "sem_abaixo_do_limiar_para",
			numRespostas: 7,
			sem:          0.29,
			wantParar:    true,
			wantMotivo:   "SEM",
		},
		{
			name:         "sem_no_limiar_continua",
			numRespostas: 7,
			sem:          0.30,
			wantParar:    false,
		},
		{
			name:         "pool_vazio_para",
			numRespostas: 6,
			sem:          0.8,
			poolVazio:    true,
			wantParar:    true,
		},
		{
			// Maximum wins even when the pool also ran dry.
			name:         "maximo_antes_do_pool_vazio",
			numRespostas: 20,
			sem:          0.8,
			poolVazio:    true,
			wantParar:    true,
			wantMotivo:   "máximo",
		},
		{
			name:         "sessao_no_meio_continua",
			numRespostas: 10,
			sem:          0.5,
			wantParar:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AvaliarParada(tc.numRespostas, tc.sem, tc.poolVazio)
			if got.DeveParar != tc.wantParar {
				t.Fatalf("AvaliarParada(%d, %v, %v).DeveParar=%v, want %v",
					tc.numRespostas, tc.sem, tc.poolVazio, got.DeveParar, tc.wantParar)
			}
			if tc.wantMotivo != "" && !strings.Contains(got.Motivo, tc.wantMotivo) {
				t.Fatalf("Motivo=%q, want it to contain %q", got.Motivo, tc.wantMotivo)
			}
			if got.Motivo == "" {
				t.Fatalf("Motivo must never be empty")
			}
		})
	}
}
