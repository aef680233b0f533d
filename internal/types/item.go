package types

import (
	"time"

	"github.com/google/uuid"
)

// Item is one calibrated entry of the item bank. The IRT parameters are fixed
// at calibration time and never change afterwards.
type Item struct {
	ID        uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Enunciado string        `gorm:"not null;column:enunciado" json:"enunciado"`
	Categoria CategoriaItem `gorm:"not null;column:categoria;index" json:"categoria"`
	Dominio   string        `gorm:"column:dominio" json:"dominio"`
	// 3PL parameters: discrimination a > 0, difficulty b, guessing floor c in [0,1).
	ParametroA float64   `gorm:"not null;column:parametro_a" json:"parametro_a"`
	ParametroB float64   `gorm:"not null;column:parametro_b" json:"parametro_b"`
	ParametroC float64   `gorm:"not null;column:parametro_c" json:"parametro_c"`
	CreatedAt  time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Item) TableName() string {
	return "item"
}

// Questionario configures one adaptive questionnaire: which slice of the item
// bank a session may draw from.
type Questionario struct {
	ID               uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Nome             string        `gorm:"not null;column:nome" json:"nome"`
	CategoriaFiltro  CategoriaItem `gorm:"column:categoria_filtro" json:"categoria_filtro"`
	DominioFiltro    string        `gorm:"column:dominio_filtro" json:"dominio_filtro"`
	Ativo            bool          `gorm:"not null;default:true;column:ativo" json:"ativo"`
	CreatedAt        time.Time     `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"not null;default:now()" json:"updated_at"`
}

func (Questionario) TableName() string {
	return "questionario"
}
