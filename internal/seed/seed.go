// Package seed loads the pre-calibrated item bank and questionnaire
// definitions from a YAML file at startup. Items arrive calibrated; nothing
// here re-estimates IRT parameters.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/repos"
	"github.com/acolhedu/acolhe-backend/internal/types"
)

type Arquivo struct {
	Questionarios []QuestionarioSeed `yaml:"questionarios"`
	Itens         []ItemSeed         `yaml:"itens"`
}

type QuestionarioSeed struct {
	Nome            string `yaml:"nome"`
	CategoriaFiltro string `yaml:"categoria_filtro"`
	DominioFiltro   string `yaml:"dominio_filtro"`
}

type ItemSeed struct {
	Enunciado string  `yaml:"enunciado"`
	Categoria string  `yaml:"categoria"`
	Dominio   string  `yaml:"dominio"`
	A         float64 `yaml:"a"`
	B         float64 `yaml:"b"`
	C         float64 `yaml:"c"`
}

type Seeder struct {
	db               *gorm.DB
	log              *logger.Logger
	itemRepo         repos.ItemRepo
	questionarioRepo repos.QuestionarioRepo
}

func NewSeeder(db *gorm.DB, baseLog *logger.Logger, itemRepo repos.ItemRepo, questionarioRepo repos.QuestionarioRepo) *Seeder {
	return &Seeder{
		db:               db,
		log:              baseLog.With("service", "Seeder"),
		itemRepo:         itemRepo,
		questionarioRepo: questionarioRepo,
	}
}

// Load seeds the item bank from path. A non-empty bank is left untouched:
// calibrated items are immutable and reseeding would not be an upsert but a
// recalibration, which is out of scope.
func (s *Seeder) Load(ctx context.Context, path string) error {
	count, err := s.itemRepo.CountAll(ctx, nil)
	if err != nil {
		return fmt.Errorf("contar itens existentes: %w", err)
	}
	if count > 0 {
		s.log.Info("Item bank already seeded, skipping", "itens", count)
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ler arquivo de seed: %w", err)
	}
	var arquivo Arquivo
	if err := yaml.Unmarshal(raw, &arquivo); err != nil {
		return fmt.Errorf("interpretar arquivo de seed: %w", err)
	}

	itens := make([]*types.Item, 0, len(arquivo.Itens))
	for i, it := range arquivo.Itens {
		if it.A <= 0 {
			return fmt.Errorf("item %d: discriminação a deve ser positiva", i)
		}
		if it.C < 0 || it.C >= 1 {
			return fmt.Errorf("item %d: parâmetro c fora de [0,1)", i)
		}
		itens = append(itens, &types.Item{
			Enunciado:  it.Enunciado,
			Categoria:  types.CategoriaItem(it.Categoria),
			Dominio:    it.Dominio,
			ParametroA: it.A,
			ParametroB: it.B,
			ParametroC: it.C,
		})
	}
	questionarios := make([]*types.Questionario, 0, len(arquivo.Questionarios))
	for _, q := range arquivo.Questionarios {
		questionarios = append(questionarios, &types.Questionario{
			Nome:            q.Nome,
			CategoriaFiltro: types.CategoriaItem(q.CategoriaFiltro),
			DominioFiltro:   q.DominioFiltro,
			Ativo:           true,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.itemRepo.Create(ctx, tx, itens); err != nil {
			return fmt.Errorf("inserir itens: %w", err)
		}
		if _, err := s.questionarioRepo.Create(ctx, tx, questionarios); err != nil {
			return fmt.Errorf("inserir questionários: %w", err)
		}
		s.log.Info("Item bank seeded", "itens", len(itens), "questionarios", len(questionarios))
		return nil
	})
}
