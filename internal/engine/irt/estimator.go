package irt

import (
	"errors"
	"math"
)

var (
	// ErrSemRespostas: theta/SEM are undefined before the first response.
	ErrSemRespostas = errors.New("nenhuma resposta registrada para estimar theta")
	// ErrInformacaoNula: every item in the set carries zero information, so
	// no finite SEM exists.
	ErrInformacaoNula = errors.New("informação acumulada nula, SEM indisponível")
)

const (
	thetaMin        = -4.0
	thetaMax        = 4.0
	maxIteracoes    = 50
	tolConvergencia = 1e-4
	passoMaximo     = 1.0
)

// Estimativa is the latent-trait point estimate and its standard error.
type Estimativa struct {
	Theta float64
	SEM   float64
}

// Estimador recomputes theta/SEM from the full ordered response list on every
// call. No incremental accumulator exists on purpose: deriving the estimate
// from the stored responses is what makes recomputation idempotent and the
// audit trail authoritative.
type Estimador struct {
	calc *Calculadora
}

func NovoEstimador(calc *Calculadora) *Estimador {
	if calc == nil {
		calc = NovaCalculadora(nil)
	}
	return &Estimador{calc: calc}
}

// Estimar runs a Newton-style ascent on the accumulated 3PL likelihood of the
// response set. The curvature term reuses the calibrated information variant,
// keeping the estimator consistent with selection and stopping.
func (e *Estimador) Estimar(respostas []Resposta) (Estimativa, error) {
	if len(respostas) == 0 {
		return Estimativa{}, ErrSemRespostas
	}

	theta := 0.0
	for i := 0; i < maxIteracoes; i++ {
		escore := 0.0
		curvatura := 0.0
		for _, r := range respostas {
			prob := Prob3PL(theta, r.Item)
			u := 0.0
			if r.Acerto() {
				u = 1.0
			}
			if prob > 1e-10 && r.Item.C < 1 {
				escore += r.Item.A * (u - prob) * (prob - r.Item.C) / (prob * (1 - r.Item.C))
			}
			curvatura += e.calc.Informacao(theta, r.Item)
		}
		if curvatura <= 1e-10 {
			break
		}
		delta := clamp(escore/curvatura, -passoMaximo, passoMaximo)
		theta = clamp(theta+delta, thetaMin, thetaMax)
		if math.Abs(delta) < tolConvergencia {
			break
		}
		if theta == thetaMin || theta == thetaMax {
			// Further steps in the same direction cannot move theta.
			if (delta > 0 && theta == thetaMax) || (delta < 0 && theta == thetaMin) {
				break
			}
		}
	}

	sem, err := e.CalcularSEM(theta, respostas)
	if err != nil {
		return Estimativa{}, err
	}
	return Estimativa{Theta: theta, SEM: sem}, nil
}

// CalcularSEM is 1/√ΣIᵢ(θ) over the response set's items.
func (e *Estimador) CalcularSEM(theta float64, respostas []Resposta) (float64, error) {
	if len(respostas) == 0 {
		return 0, ErrSemRespostas
	}
	total := 0.0
	for _, r := range respostas {
		total += e.calc.Informacao(theta, r.Item)
	}
	if total <= 1e-10 {
		return 0, ErrInformacaoNula
	}
	return 1 / math.Sqrt(total), nil
}
