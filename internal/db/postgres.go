package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/types"
	"github.com/acolhedu/acolhe-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "acolhe", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		log.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.Item{},
		&types.Questionario{},
		&types.SessaoAvaliacao{},
		&types.RespostaItem{},
		&types.ResultadoClinico{},
		&types.Alerta{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}
	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		name string
		stmt string
	}{
		{
			name: "fk_resposta_item_sessao_id",
			stmt: `ALTER TABLE "resposta_item" ADD CONSTRAINT "fk_resposta_item_sessao_id" FOREIGN KEY ("sessao_id") REFERENCES "sessao_avaliacao"("id") ON DELETE CASCADE`,
		},
		{
			name: "fk_resposta_item_item_id",
			stmt: `ALTER TABLE "resposta_item" ADD CONSTRAINT "fk_resposta_item_item_id" FOREIGN KEY ("item_id") REFERENCES "item"("id")`,
		},
		{
			name: "fk_resultado_clinico_sessao_id",
			stmt: `ALTER TABLE "resultado_clinico" ADD CONSTRAINT "fk_resultado_clinico_sessao_id" FOREIGN KEY ("sessao_id") REFERENCES "sessao_avaliacao"("id") ON DELETE CASCADE`,
		},
		{
			name: "fk_alerta_sessao_id",
			stmt: `ALTER TABLE "alerta" ADD CONSTRAINT "fk_alerta_sessao_id" FOREIGN KEY ("sessao_id") REFERENCES "sessao_avaliacao"("id") ON DELETE CASCADE`,
		},
		{
			name: "fk_sessao_avaliacao_questionario_id",
			stmt: `ALTER TABLE "sessao_avaliacao" ADD CONSTRAINT "fk_sessao_avaliacao_questionario_id" FOREIGN KEY ("questionario_id") REFERENCES "questionario"("id")`,
		},
	}
	for _, c := range constraints {
		var count int64
		s.db.Raw(`SELECT COUNT(*) FROM pg_constraint WHERE conname = ?`, c.name).Scan(&count)
		if count > 0 {
			continue
		}
		if err := s.db.Exec(c.stmt).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", c.name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
