package types

import (
	"testing"
	"time"
)

func TestTransicoesDeEstado(t *testing.T) {
	cases := []struct {
		name    string
		estado  EstadoSessao
		aplicar func(*SessaoAvaliacao) error
		querErr bool
		final   EstadoSessao
	}{
		{"pausar_em_andamento", SessaoEmAndamento, (*SessaoAvaliacao).Pausar, false, SessaoPausada},
		{"pausar_pausada", SessaoPausada, (*SessaoAvaliacao).Pausar, true, SessaoPausada},
		{"pausar_finalizada", SessaoFinalizada, (*SessaoAvaliacao).Pausar, true, SessaoFinalizada},
		{"retomar_pausada", SessaoPausada, (*SessaoAvaliacao).Retomar, false, SessaoEmAndamento},
		{"retomar_em_andamento", SessaoEmAndamento, (*SessaoAvaliacao).Retomar, true, SessaoEmAndamento},
		{"retomar_finalizada", SessaoFinalizada, (*SessaoAvaliacao).Retomar, true, SessaoFinalizada},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &SessaoAvaliacao{Estado: tc.estado}
			err := tc.aplicar(s)
			if tc.querErr {
				if err == nil {
					t.Fatalf("expected a state violation from %s", tc.estado)
				}
				if !IsEstadoInvalido(err) {
					t.Fatalf("err=%v, want ErrEstadoInvalido", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Estado != tc.final {
				t.Fatalf("Estado=%s, want %s", s.Estado, tc.final)
			}
		})
	}
}

func TestFinalizar(t *testing.T) {
	agora := time.Now()

	s := &SessaoAvaliacao{Estado: SessaoEmAndamento}
	if err := s.Finalizar(agora); err != nil {
		t.Fatalf("Finalizar from EM_ANDAMENTO: %v", err)
	}
	if s.Estado != SessaoFinalizada || s.FinalizadaEm == nil || !s.FinalizadaEm.Equal(agora) {
		t.Fatalf("finalized session = %+v", s)
	}

	// Pausing first does not block finalization.
	p := &SessaoAvaliacao{Estado: SessaoPausada}
	if err := p.Finalizar(agora); err != nil {
		t.Fatalf("Finalizar from PAUSADA: %v", err)
	}

	// FINALIZADA is terminal.
	if err := s.Finalizar(agora.Add(time.Minute)); err == nil || !IsEstadoInvalido(err) {
		t.Fatalf("double finalization err=%v, want ErrEstadoInvalido", err)
	}
	if !s.FinalizadaEm.Equal(agora) {
		t.Fatalf("failed finalization must not touch FinalizadaEm")
	}
}

func TestAceitaRespostas(t *testing.T) {
	for estado, quer := range map[EstadoSessao]bool{
		SessaoEmAndamento: true,
		SessaoPausada:     false,
		SessaoFinalizada:  false,
	} {
		s := &SessaoAvaliacao{Estado: estado}
		if got := s.AceitaRespostas(); got != quer {
			t.Fatalf("AceitaRespostas() in %s = %v, want %v", estado, got, quer)
		}
	}
}

func TestMaiorNivel(t *testing.T) {
	cases := []struct {
		a, b, quer NivelAlerta
	}{
		{NivelVerde, NivelVerde, NivelVerde},
		{NivelVerde, NivelAmarelo, NivelAmarelo},
		{NivelLaranja, NivelAmarelo, NivelLaranja},
		{NivelVermelho, NivelLaranja, NivelVermelho},
		{NivelAmarelo, NivelVermelho, NivelVermelho},
	}
	for _, tc := range cases {
		if got := MaiorNivel(tc.a, tc.b); got != tc.quer {
			t.Fatalf("MaiorNivel(%s, %s)=%s, want %s", tc.a, tc.b, got, tc.quer)
		}
	}
}
