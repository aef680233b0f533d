package irt

import "fmt"

const (
	// MinRespostas is a hard floor: below it the session never stops, no
	// matter how precise the estimate already is.
	MinRespostas = 5
	// MaxRespostas always stops the session, overriding SEM.
	MaxRespostas = 20
	// LimiarSEM is the precision target once the floor is cleared.
	LimiarSEM = 0.30
)

// Decisao is the stopping verdict with a human-readable reason.
type Decisao struct {
	DeveParar bool   `json:"deve_parar"`
	Motivo    string `json:"motivo"`
}

// AvaliarParada applies the composite stopping rule. Precedence matters: the
// minimum-response floor is checked before the precision threshold, so four
// responses with SEM 0.25 still continue.
func AvaliarParada(numRespostas int, sem float64, poolVazio bool) Decisao {
	if numRespostas < MinRespostas {
		return Decisao{DeveParar: false, Motivo: fmt.Sprintf("mínimo de %d respostas ainda não atingido", MinRespostas)}
	}
	if numRespostas >= MaxRespostas {
		return Decisao{DeveParar: true, Motivo: fmt.Sprintf("número máximo de %d respostas atingido", MaxRespostas)}
	}
	if sem < LimiarSEM {
		return Decisao{DeveParar: true, Motivo: fmt.Sprintf("precisão alvo atingida: SEM %.3f abaixo de %.2f", sem, LimiarSEM)}
	}
	if poolVazio {
		return Decisao{DeveParar: true, Motivo: "não há mais itens disponíveis para seleção"}
	}
	return Decisao{DeveParar: false, Motivo: "precisão alvo ainda não atingida"}
}
