package types

import (
	"errors"
	"fmt"
)

var (
	// ErrValorInvalido signals a normalized response value outside [0,1].
	ErrValorInvalido = errors.New("valor normalizado fora do intervalo [0,1]")
	// ErrItemDesconhecido signals a response referencing an unknown item.
	ErrItemDesconhecido = errors.New("item não encontrado no banco de itens")
	// ErrItemJaRespondido signals a duplicate response for an item already
	// administered in the session.
	ErrItemJaRespondido = errors.New("item já respondido nesta sessão")
	// ErrSessaoNaoEncontrada signals an unknown session id.
	ErrSessaoNaoEncontrada = errors.New("sessão não encontrada")
	// ErrQuestionarioNaoEncontrado signals an unknown questionnaire id.
	ErrQuestionarioNaoEncontrado = errors.New("questionário não encontrado")
	// ErrAlertaNaoEncontrado signals an unknown alert id.
	ErrAlertaNaoEncontrado = errors.New("alerta não encontrado")
	// ErrInstrumentoDesconhecido signals an unsupported clinical instrument.
	ErrInstrumentoDesconhecido = errors.New("instrumento clínico desconhecido")
	// ErrScoreInvalido signals a raw score outside the instrument's range.
	ErrScoreInvalido = errors.New("score fora do intervalo do instrumento")
	// ErrStatusInvalido signals an unknown alert review status.
	ErrStatusInvalido = errors.New("status de alerta inválido")
)

// ErrEstadoInvalido is returned when a lifecycle operation is illegal for the
// session's current state.
type ErrEstadoInvalido struct {
	Operacao string
	Estado   EstadoSessao
}

func (e *ErrEstadoInvalido) Error() string {
	return fmt.Sprintf("operação %q inválida no estado %s", e.Operacao, e.Estado)
}

// IsEstadoInvalido reports whether err is a session state violation.
func IsEstadoInvalido(err error) bool {
	var e *ErrEstadoInvalido
	return errors.As(err, &e)
}
