package irt

import (
	"math"
	"testing"

	"github.com/acolhedu/acolhe-backend/internal/cache"
	"github.com/google/uuid"
)

func respostaTeste(p Parametros, valor float64) Resposta {
	return Resposta{ItemID: uuid.New(), Item: p, Valor: valor, TempoResposta: 4}
}

func TestEstimarSemRespostas(t *testing.T) {
	est := NovoEstimador(nil)
	if _, err := est.Estimar(nil); err != ErrSemRespostas {
		t.Fatalf("Estimar(nil) err=%v, want ErrSemRespostas", err)
	}
	if _, err := est.CalcularSEM(0, nil); err != ErrSemRespostas {
		t.Fatalf("CalcularSEM(0, nil) err=%v, want ErrSemRespostas", err)
	}
}

func TestEstimarUmaRespostaImprecisa(t *testing.T) {
	est := NovoEstimador(nil)

	// A single endorsed hard item pushes theta to the upper clamp. There
	// a=1, b=4, c=0 gives p=q=0.5 and information exactly 1, so SEM=1.
	r := respostaTeste(Parametros{A: 1, B: 4, C: 0}, 0.9)
	got, err := est.Estimar([]Resposta{r})
	if err != nil {
		t.Fatalf("Estimar: %v", err)
	}
	if got.Theta != 4 {
		t.Fatalf("Theta=%v, want clamp at 4", got.Theta)
	}
	if got.SEM <= 0.5 {
		t.Fatalf("SEM=%v after one response, want > 0.5", got.SEM)
	}
	if math.Abs(got.SEM-1.0) > 1e-9 {
		t.Fatalf("SEM=%v, want 1.0", got.SEM)
	}
}

func TestEstimarDezRespostasConsistentes(t *testing.T) {
	est := NovoEstimador(nil)

	respostas := make([]Resposta, 0, 10)
	for i := 0; i < 10; i++ {
		respostas = append(respostas, respostaTeste(Parametros{A: 1, B: 4, C: 0}, 0.9))
	}
	got, err := est.Estimar(respostas)
	if err != nil {
		t.Fatalf("Estimar: %v", err)
	}
	if got.Theta != 4 {
		t.Fatalf("Theta=%v, want clamp at 4", got.Theta)
	}
	// Ten items each with information 1 at theta=4: SEM = 1/sqrt(10).
	want := 1 / math.Sqrt(10)
	if math.Abs(got.SEM-want) > 1e-9 {
		t.Fatalf("SEM=%v, want %v", got.SEM, want)
	}
	if got.SEM >= 0.5 {
		t.Fatalf("SEM=%v after ten consistent responses, want < 0.5", got.SEM)
	}
}

func TestEstimarDentroDosLimites(t *testing.T) {
	est := NovoEstimador(nil)

	respostas := []Resposta{
		respostaTeste(Parametros{A: 1.8, B: -0.4, C: 0.10}, 1),
		respostaTeste(Parametros{A: 2.1, B: 0.2, C: 0.05}, 0),
		respostaTeste(Parametros{A: 1.5, B: 0.8, C: 0.15}, 1),
		respostaTeste(Parametros{A: 2.0, B: -0.6, C: 0.08}, 0),
		respostaTeste(Parametros{A: 1.7, B: 0.0, C: 0.12}, 1),
		respostaTeste(Parametros{A: 2.2, B: 0.5, C: 0.05}, 0),
	}
	got, err := est.Estimar(respostas)
	if err != nil {
		t.Fatalf("Estimar: %v", err)
	}
	if got.Theta < -4 || got.Theta > 4 {
		t.Fatalf("Theta=%v outside [-4,4]", got.Theta)
	}
	if got.SEM <= 0 || math.IsNaN(got.SEM) || math.IsInf(got.SEM, 0) {
		t.Fatalf("SEM=%v, want a finite positive value", got.SEM)
	}
}

func TestEstimarRecomputacaoIdempotente(t *testing.T) {
	respostas := []Resposta{
		respostaTeste(Parametros{A: 1.8, B: -0.4, C: 0.10}, 1),
		respostaTeste(Parametros{A: 2.1, B: 0.2, C: 0.05}, 0),
		respostaTeste(Parametros{A: 1.5, B: 0.8, C: 0.15}, 1),
		respostaTeste(Parametros{A: 1.7, B: 0.0, C: 0.12}, 0.7),
		respostaTeste(Parametros{A: 1.6, B: 0.3, C: 0.10}, 0.2),
	}

	semCache := NovoEstimador(NovaCalculadora(nil))
	comCache := NovoEstimador(NovaCalculadora(cache.NewLRU(500)))

	a, err := semCache.Estimar(respostas)
	if err != nil {
		t.Fatalf("Estimar sem cache: %v", err)
	}
	b, err := comCache.Estimar(respostas)
	if err != nil {
		t.Fatalf("Estimar com cache: %v", err)
	}
	if a != b {
		t.Fatalf("cache changed the estimate: %+v != %+v", a, b)
	}

	// Recomputing from the same persisted list must reproduce the estimate
	// exactly, including with a warm cache.
	c, err := comCache.Estimar(respostas)
	if err != nil {
		t.Fatalf("Estimar recomputado: %v", err)
	}
	if c != b {
		t.Fatalf("recomputation drifted: %+v != %+v", c, b)
	}
}

func TestCalcularSEMInformacaoNula(t *testing.T) {
	est := NovoEstimador(nil)

	// An extreme item whose denominator underflows at this theta carries
	// zero information, so no finite SEM exists.
	r := respostaTeste(Parametros{A: 25, B: -4, C: 0}, 1)
	if _, err := est.CalcularSEM(4, []Resposta{r}); err != ErrInformacaoNula {
		t.Fatalf("CalcularSEM err=%v, want ErrInformacaoNula", err)
	}
}
