package services

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/acolhedu/acolhe-backend/internal/engine/clinical"
	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/repos"
	"github.com/acolhedu/acolhe-backend/internal/types"
)

// criarAlertas materializes detected signals into persisted Alerta rows,
// ordered most severe first. One alert per signal type; when a type fires
// more than once the higher level wins.
func (s *avaliacaoService) criarAlertas(ctx context.Context, sessao *types.SessaoAvaliacao, sinais []clinical.Sinal) ([]*types.Alerta, error) {
	if len(sinais) == 0 {
		return []*types.Alerta{}, nil
	}

	porTipo := make(map[types.TipoAlerta]types.NivelAlerta, len(sinais))
	for _, sinal := range sinais {
		if atual, ok := porTipo[sinal.Tipo]; !ok || sinal.Nivel.Ordem() > atual.Ordem() {
			porTipo[sinal.Tipo] = sinal.Nivel
		}
	}

	alertas := make([]*types.Alerta, 0, len(porTipo))
	for tipo, nivel := range porTipo {
		catalogo, ok := clinical.Catalogo(tipo)
		if !ok {
			continue
		}
		recomendacoes, err := json.Marshal(catalogo.Recomendacoes)
		if err != nil {
			return nil, err
		}
		alertas = append(alertas, &types.Alerta{
			SessaoID:      sessao.ID,
			UsuarioID:     sessao.UsuarioID,
			Tipo:          tipo,
			Nivel:         nivel,
			Status:        types.AlertaAtivo,
			Titulo:        catalogo.Titulo,
			Descricao:     catalogo.Descricao,
			Recomendacoes: datatypes.JSON(recomendacoes),
		})
	}
	sort.Slice(alertas, func(i, j int) bool {
		if alertas[i].Nivel.Ordem() != alertas[j].Nivel.Ordem() {
			return alertas[i].Nivel.Ordem() > alertas[j].Nivel.Ordem()
		}
		return alertas[i].Tipo < alertas[j].Tipo
	})

	if _, err := s.alertaRepo.Create(ctx, nil, alertas); err != nil {
		return nil, err
	}
	return alertas, nil
}

// AlertaService is the human-review surface: listing and status transitions.
// The engine itself never mutates an alert after creation.
type AlertaService interface {
	Listar(ctx context.Context, usuarioID *uuid.UUID, status types.StatusAlerta) ([]*types.Alerta, error)
	AtualizarStatus(ctx context.Context, alertaID uuid.UUID, status types.StatusAlerta) (*types.Alerta, error)
}

type alertaService struct {
	db         *gorm.DB
	log        *logger.Logger
	alertaRepo repos.AlertaRepo
}

func NewAlertaService(db *gorm.DB, baseLog *logger.Logger, alertaRepo repos.AlertaRepo) AlertaService {
	return &alertaService{
		db:         db,
		log:        baseLog.With("service", "AlertaService"),
		alertaRepo: alertaRepo,
	}
}

func (s *alertaService) Listar(ctx context.Context, usuarioID *uuid.UUID, status types.StatusAlerta) ([]*types.Alerta, error) {
	if status != "" && !statusValido(status) {
		return nil, types.ErrStatusInvalido
	}
	return s.alertaRepo.List(ctx, nil, usuarioID, status)
}

func (s *alertaService) AtualizarStatus(ctx context.Context, alertaID uuid.UUID, status types.StatusAlerta) (*types.Alerta, error) {
	if !statusValido(status) {
		return nil, types.ErrStatusInvalido
	}
	alerta, err := s.alertaRepo.GetByID(ctx, nil, alertaID)
	if err != nil {
		return nil, err
	}
	if alerta == nil {
		return nil, types.ErrAlertaNaoEncontrado
	}
	if err := s.alertaRepo.UpdateStatus(ctx, nil, alertaID, status); err != nil {
		return nil, err
	}
	alerta.Status = status
	return alerta, nil
}

func statusValido(status types.StatusAlerta) bool {
	switch status {
	case types.AlertaAtivo, types.AlertaVisualizado, types.AlertaEmAcompanhamento, types.AlertaResolvido:
		return true
	default:
		return false
	}
}
