package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Alerta is a consolidated risk signal synthesized at session finalization.
// The engine creates alerts as ATIVO and never touches them again; status
// changes come from human review.
type Alerta struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessaoID      uuid.UUID      `gorm:"type:uuid;not null;column:sessao_id;index" json:"sessao_id"`
	UsuarioID     uuid.UUID      `gorm:"type:uuid;not null;column:usuario_id;index" json:"usuario_id"`
	Tipo          TipoAlerta     `gorm:"not null;column:tipo" json:"tipo"`
	Nivel         NivelAlerta    `gorm:"not null;column:nivel" json:"nivel"`
	Status        StatusAlerta   `gorm:"not null;default:'ATIVO';column:status" json:"status"`
	Titulo        string         `gorm:"not null;column:titulo" json:"titulo"`
	Descricao     string         `gorm:"column:descricao" json:"descricao"`
	Recomendacoes datatypes.JSON `gorm:"column:recomendacoes" json:"recomendacoes"`
	CreatedAt     time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Alerta) TableName() string {
	return "alerta"
}
