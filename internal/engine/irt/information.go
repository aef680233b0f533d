package irt

import (
	"fmt"
	"math"

	"github.com/acolhedu/acolhe-backend/internal/cache"
)

// Calculadora computes per-item information at a given theta, optionally
// memoized through a bounded LRU. A nil cache is valid and simply recomputes;
// results are identical either way.
type Calculadora struct {
	cache *cache.LRU
}

func NovaCalculadora(c *cache.LRU) *Calculadora {
	return &Calculadora{cache: c}
}

// Informacao is the information function the item bank was calibrated
// against:
//
//	p = c + (1-c)/(1+exp(-a(θ-b)))
//	I = a²(p-c)² / (p·(1-p)·(1-c)²)
//
// This is deliberately not the textbook 3PL information formula. Selection
// ranking and the SEM stopping threshold are tuned to this variant, so both
// go through this single function. A degenerate denominator yields zero
// information instead of an error: a badly calibrated item must not be able
// to crash selection.
func (ca *Calculadora) Informacao(theta float64, p Parametros) float64 {
	// Information is evaluated on the same 0.01 theta grid the cache is
	// keyed by, so the cached and uncached paths return bit-identical
	// values for any theta.
	theta = arredondaTheta(theta)
	if ca.cache == nil {
		return informacao(theta, p)
	}
	key := chaveInformacao(theta, p)
	if v, ok := ca.cache.Get(key); ok {
		return v
	}
	v := informacao(theta, p)
	ca.cache.Put(key, v)
	return v
}

func arredondaTheta(theta float64) float64 {
	return math.Round(theta*100) / 100
}

func informacao(theta float64, p Parametros) float64 {
	prob := Prob3PL(theta, p)
	q := 1 - prob
	numerador := p.A * p.A * (prob - p.C) * (prob - p.C)
	denominador := prob * q * (1 - p.C) * (1 - p.C)
	if denominador <= 1e-10 {
		return 0
	}
	return numerador / denominador
}

// Theta is rounded to 2 decimals in the key; that resolution is far below the
// SEM stopping threshold, so collisions are harmless.
func chaveInformacao(theta float64, p Parametros) string {
	return fmt.Sprintf("%.2f|%g|%g|%g", theta, p.A, p.B, p.C)
}
