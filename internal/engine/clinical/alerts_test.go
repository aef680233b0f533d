package clinical

import (
	"strings"
	"testing"

	"github.com/acolhedu/acolhe-backend/internal/types"
)

func TestAnalisarAlertasCombinados(t *testing.T) {
	t.Run("sem_instrumentos", func(t *testing.T) {
		got := AnalisarAlertasCombinados()
		if got.Nivel != types.NivelVerde || got.RequerAcaoImediata {
			t.Fatalf("empty input gave %+v, want VERDE without action", got)
		}
		if got.Mensagem == "" {
			t.Fatalf("Mensagem must not be empty")
		}
	})

	t.Run("todos_verdes", func(t *testing.T) {
		got := AnalisarAlertasCombinados(
			InterpretarPHQ9(2, nil),
			InterpretarGAD7(1),
			InterpretarWHO5(22),
		)
		if got.Nivel != types.NivelVerde || got.RequerAcaoImediata {
			t.Fatalf("all-green gave %+v", got)
		}
		if !strings.Contains(got.Mensagem, "normalidade") {
			t.Fatalf("Mensagem=%q, want the normal-range wording", got.Mensagem)
		}
	})

	t.Run("maximo_prevalece", func(t *testing.T) {
		got := AnalisarAlertasCombinados(
			InterpretarPHQ9(2, nil),
			InterpretarGAD7(12),
		)
		if got.Nivel != types.NivelLaranja || got.RequerAcaoImediata {
			t.Fatalf("VERDE+LARANJA gave %+v, want LARANJA without action", got)
		}
	})

	t.Run("vermelho_exige_acao", func(t *testing.T) {
		got := AnalisarAlertasCombinados(
			InterpretarPHQ9(2, nil),
			InterpretarGAD7(18),
			InterpretarWHO5(22),
		)
		if got.Nivel != types.NivelVermelho || !got.RequerAcaoImediata {
			t.Fatalf("critical instrument gave %+v, want VERMELHO with action", got)
		}
		if !strings.Contains(got.Mensagem, string(types.InstrumentoGAD7)) {
			t.Fatalf("Mensagem=%q, want it to name the critical instrument", got.Mensagem)
		}
	})

	t.Run("instrumento_unico", func(t *testing.T) {
		got := AnalisarAlertasCombinados(InterpretarWHO5(5))
		if got.Nivel != types.NivelVermelho || !got.RequerAcaoImediata {
			t.Fatalf("single critical instrument gave %+v", got)
		}
	})
}

func TestCatalogoCobreTodosOsTipos(t *testing.T) {
	for _, tipo := range types.TiposAlerta {
		c, ok := Catalogo(tipo)
		if !ok {
			t.Fatalf("no catalogue entry for %s", tipo)
		}
		if c.Titulo == "" || c.Descricao == "" || len(c.Recomendacoes) == 0 {
			t.Fatalf("incomplete catalogue entry for %s: %+v", tipo, c)
		}
	}
	if _, ok := Catalogo(types.TipoAlerta("INEXISTENTE")); ok {
		t.Fatalf("unknown type must not resolve")
	}
}
