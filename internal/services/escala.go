package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acolhedu/acolhe-backend/internal/engine/clinical"
	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/repos"
	"github.com/acolhedu/acolhe-backend/internal/types"
)

// EscalaService handles fixed-form instrument submissions (PHQ-9, GAD-7,
// WHO-5) attached to an assessment session.
type EscalaService interface {
	RegistrarEscala(ctx context.Context, sessaoID uuid.UUID, instrumento types.InstrumentoClinico, respostas []clinical.RespostaEscala, item9 *int) (*types.ResultadoClinico, error)
}

type escalaService struct {
	db            *gorm.DB
	log           *logger.Logger
	sessaoRepo    repos.SessaoRepo
	resultadoRepo repos.ResultadoClinicoRepo
}

func NewEscalaService(db *gorm.DB, baseLog *logger.Logger, sessaoRepo repos.SessaoRepo, resultadoRepo repos.ResultadoClinicoRepo) EscalaService {
	return &escalaService{
		db:            db,
		log:           baseLog.With("service", "EscalaService"),
		sessaoRepo:    sessaoRepo,
		resultadoRepo: resultadoRepo,
	}
}

func (s *escalaService) RegistrarEscala(ctx context.Context, sessaoID uuid.UUID, instrumento types.InstrumentoClinico, respostas []clinical.RespostaEscala, item9 *int) (*types.ResultadoClinico, error) {
	sessao, err := s.sessaoRepo.GetByID(ctx, nil, sessaoID)
	if err != nil {
		return nil, err
	}
	if sessao == nil {
		return nil, types.ErrSessaoNaoEncontrada
	}
	if sessao.Estado == types.SessaoFinalizada {
		return nil, &types.ErrEstadoInvalido{Operacao: "registrar escala", Estado: sessao.Estado}
	}

	score := clinical.CalcularScoreEscala(respostas)

	var interpretacao clinical.Interpretacao
	switch instrumento {
	case types.InstrumentoPHQ9:
		if score < 0 || score > clinical.ScoreMaximoPHQ9 {
			return nil, types.ErrScoreInvalido
		}
		interpretacao = clinical.InterpretarPHQ9(score, item9)
	case types.InstrumentoGAD7:
		if score < 0 || score > clinical.ScoreMaximoGAD7 {
			return nil, types.ErrScoreInvalido
		}
		interpretacao = clinical.InterpretarGAD7(score)
	case types.InstrumentoWHO5:
		if score < 0 || score > clinical.ScoreMaximoWHO5 {
			return nil, types.ErrScoreInvalido
		}
		interpretacao = clinical.InterpretarWHO5(score)
	default:
		return nil, types.ErrInstrumentoDesconhecido
	}

	resultado := &types.ResultadoClinico{
		SessaoID:           sessaoID,
		Instrumento:        interpretacao.Instrumento,
		Score:              interpretacao.Score,
		ScoreMaximo:        interpretacao.ScoreMaximo,
		Percentual:         interpretacao.Percentual,
		Categoria:          interpretacao.Categoria,
		NivelAlerta:        interpretacao.NivelAlerta,
		RequerAcaoImediata: interpretacao.RequerAcaoImediata,
		Descricao:          interpretacao.Descricao,
	}
	if _, err := s.resultadoRepo.Create(ctx, nil, resultado); err != nil {
		return nil, err
	}

	s.log.Info("Escala registrada",
		"sessao_id", sessaoID,
		"instrumento", instrumento,
		"nivel_alerta", interpretacao.NivelAlerta,
		"requer_acao_imediata", interpretacao.RequerAcaoImediata,
	)
	return resultado, nil
}
