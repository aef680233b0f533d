package irt

import (
	"sort"

	"github.com/google/uuid"
)

// Candidato is an unadministered item offered to the selector.
type Candidato struct {
	ID   uuid.UUID
	Item Parametros
}

// Seletor picks the next item by maximum information at the current theta.
type Seletor struct {
	calc *Calculadora
}

func NovoSeletor(calc *Calculadora) *Seletor {
	if calc == nil {
		calc = NovaCalculadora(nil)
	}
	return &Seletor{calc: calc}
}

// SelecionarProximo returns the candidate maximizing information at theta,
// skipping anything in administrados. Ties break to the lowest item id so
// selection is deterministic. ok=false means the pool is exhausted, which is
// a stopping trigger for the caller, not an error.
func (s *Seletor) SelecionarProximo(theta float64, candidatos []Candidato, administrados map[uuid.UUID]bool) (Candidato, bool) {
	ordenados := make([]Candidato, 0, len(candidatos))
	for _, c := range candidatos {
		if administrados[c.ID] {
			continue
		}
		ordenados = append(ordenados, c)
	}
	if len(ordenados) == 0 {
		return Candidato{}, false
	}
	sort.Slice(ordenados, func(i, j int) bool {
		return ordenados[i].ID.String() < ordenados[j].ID.String()
	})

	melhor := ordenados[0]
	melhorInfo := s.calc.Informacao(theta, melhor.Item)
	for _, c := range ordenados[1:] {
		if info := s.calc.Informacao(theta, c.Item); info > melhorInfo {
			melhor = c
			melhorInfo = info
		}
	}
	return melhor, true
}
