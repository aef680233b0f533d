package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SessaoAvaliacao is one assessment attempt. The response list is the source
// of truth: theta/SEM and the administered-item set are derived from it, the
// columns here only mirror the latest recomputation.
type SessaoAvaliacao struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuestionarioID uuid.UUID      `gorm:"type:uuid;not null;column:questionario_id;index" json:"questionario_id"`
	UsuarioID      uuid.UUID      `gorm:"type:uuid;not null;column:usuario_id;index" json:"usuario_id"`
	Estado         EstadoSessao   `gorm:"not null;column:estado" json:"estado"`
	Theta          float64        `gorm:"not null;default:0;column:theta" json:"theta"`
	SEM            float64        `gorm:"not null;default:0;column:sem" json:"sem"`
	Contexto       datatypes.JSON `gorm:"column:contexto" json:"contexto,omitempty"`
	IniciadaEm     time.Time      `gorm:"not null;default:now();column:iniciada_em" json:"iniciada_em"`
	FinalizadaEm   *time.Time     `gorm:"column:finalizada_em" json:"finalizada_em,omitempty"`
	CreatedAt      time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;default:now()" json:"updated_at"`

	Respostas []RespostaItem `gorm:"foreignKey:SessaoID" json:"respostas,omitempty"`
}

func (SessaoAvaliacao) TableName() string {
	return "sessao_avaliacao"
}

// AceitaRespostas reports whether the session may record new responses.
func (s *SessaoAvaliacao) AceitaRespostas() bool {
	return s.Estado == SessaoEmAndamento
}

// Pausar moves EM_ANDAMENTO → PAUSADA.
func (s *SessaoAvaliacao) Pausar() error {
	if s.Estado != SessaoEmAndamento {
		return &ErrEstadoInvalido{Operacao: "pausar", Estado: s.Estado}
	}
	s.Estado = SessaoPausada
	return nil
}

// Retomar moves PAUSADA → EM_ANDAMENTO.
func (s *SessaoAvaliacao) Retomar() error {
	if s.Estado != SessaoPausada {
		return &ErrEstadoInvalido{Operacao: "retomar", Estado: s.Estado}
	}
	s.Estado = SessaoEmAndamento
	return nil
}

// Finalizar moves EM_ANDAMENTO or PAUSADA → FINALIZADA. FINALIZADA is
// terminal: finalizing twice is an error, nothing is silently ignored.
func (s *SessaoAvaliacao) Finalizar(agora time.Time) error {
	if s.Estado != SessaoEmAndamento && s.Estado != SessaoPausada {
		return &ErrEstadoInvalido{Operacao: "finalizar", Estado: s.Estado}
	}
	s.Estado = SessaoFinalizada
	s.FinalizadaEm = &agora
	return nil
}

// RespostaItem is one recorded answer. Rows are append-only: never updated or
// deleted, they are the audit trail every recomputation replays.
type RespostaItem struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessaoID      uuid.UUID `gorm:"type:uuid;not null;column:sessao_id;index" json:"sessao_id"`
	ItemID        uuid.UUID `gorm:"type:uuid;not null;column:item_id" json:"item_id"`
	Valor         float64   `gorm:"not null;column:valor" json:"valor"`
	TempoResposta float64   `gorm:"not null;column:tempo_resposta" json:"tempo_resposta"`
	RespondidaEm  time.Time `gorm:"not null;default:now();column:respondida_em" json:"respondida_em"`
	CreatedAt     time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (RespostaItem) TableName() string {
	return "resposta_item"
}
