// Package irt implements the adaptive assessment core: the 3PL response
// model, the calibrated information function, theta/SEM estimation, maximum-
// information item selection and the composite stopping rule. Everything here
// is a pure function of its inputs so a session can be replayed from its
// stored response list at any time.
package irt

import (
	"math"

	"github.com/google/uuid"
)

// Parametros are the fixed 3PL calibration of one item:
// discrimination a > 0, difficulty b, pseudo-guessing floor c in [0,1).
type Parametros struct {
	A float64
	B float64
	C float64
}

// Resposta is one answer as the estimator sees it: the responding item's
// calibration plus the normalized value in [0,1].
type Resposta struct {
	ItemID        uuid.UUID
	Item          Parametros
	Valor         float64
	TempoResposta float64
}

// Acerto binarizes the normalized value for estimation: values above 0.5
// count as an endorsement ("correct").
func (r Resposta) Acerto() bool {
	return r.Valor > 0.5
}

// Prob3PL is the three-parameter-logistic response probability at theta.
func Prob3PL(theta float64, p Parametros) float64 {
	return p.C + (1-p.C)/(1+math.Exp(-p.A*(theta-p.B)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
