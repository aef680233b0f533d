package types

import (
	"time"

	"github.com/google/uuid"
)

// ResultadoClinico persists the interpretation of one fixed-form instrument
// submission, derived purely from the raw score (and, for PHQ-9, item 9).
type ResultadoClinico struct {
	ID                  uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessaoID            uuid.UUID           `gorm:"type:uuid;not null;column:sessao_id;index" json:"sessao_id"`
	Instrumento         InstrumentoClinico  `gorm:"not null;column:instrumento" json:"instrumento"`
	Score               int                 `gorm:"not null;column:score" json:"score"`
	ScoreMaximo         int                 `gorm:"not null;column:score_maximo" json:"score_maximo"`
	Percentual          int                 `gorm:"not null;column:percentual" json:"percentual"`
	Categoria           CategoriaSeveridade `gorm:"not null;column:categoria" json:"categoria"`
	NivelAlerta         NivelAlerta         `gorm:"not null;column:nivel_alerta" json:"nivel_alerta"`
	RequerAcaoImediata  bool                `gorm:"not null;column:requer_acao_imediata" json:"requer_acao_imediata"`
	Descricao           string              `gorm:"column:descricao" json:"descricao"`
	CreatedAt           time.Time           `gorm:"not null;default:now()" json:"created_at"`
}

func (ResultadoClinico) TableName() string {
	return "resultado_clinico"
}
