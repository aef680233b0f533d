package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/acolhedu/acolhe-backend/internal/engine/clinical"
	"github.com/acolhedu/acolhe-backend/internal/engine/irt"
	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/repos"
	"github.com/acolhedu/acolhe-backend/internal/types"
)

// ResultadoResposta is the adaptive loop step result: the updated estimate,
// the stopping verdict and, while continuing, the next item to administer.
type ResultadoResposta struct {
	ProximoItem *types.Item `json:"proximo_item,omitempty"`
	Theta       float64     `json:"theta"`
	SEM         float64     `json:"sem"`
	SEMValido   bool        `json:"sem_valido"`
	DeveParar   bool        `json:"deve_parar"`
	Motivo      string      `json:"motivo"`
}

// ResultadoFinalizacao is the terminal evaluation of a session.
type ResultadoFinalizacao struct {
	Sessao         *types.SessaoAvaliacao      `json:"sessao"`
	Interpretacoes []clinical.Interpretacao    `json:"interpretacoes_clinicas,omitempty"`
	Combinado      *clinical.ResultadoCombinado `json:"resultado_combinado,omitempty"`
	Alertas        []*types.Alerta             `json:"alertas"`
}

// Notifier is the out-of-process alert sink (Redis in production, nil-safe in
// tests and degraded deployments).
type Notifier interface {
	Publish(ctx context.Context, alertas []*types.Alerta) error
}

type AvaliacaoService interface {
	IniciarSessao(ctx context.Context, questionarioID, usuarioID uuid.UUID, contexto datatypes.JSON) (*types.SessaoAvaliacao, error)
	RegistrarResposta(ctx context.Context, sessaoID, itemID uuid.UUID, valor, tempoResposta float64) (*ResultadoResposta, error)
	PausarSessao(ctx context.Context, sessaoID uuid.UUID) (*types.SessaoAvaliacao, error)
	RetomarSessao(ctx context.Context, sessaoID uuid.UUID) (*types.SessaoAvaliacao, error)
	FinalizarSessao(ctx context.Context, sessaoID uuid.UUID) (*ResultadoFinalizacao, error)
}

type avaliacaoService struct {
	db               *gorm.DB
	log              *logger.Logger
	sessaoRepo       repos.SessaoRepo
	respostaRepo     repos.RespostaRepo
	questionarioRepo repos.QuestionarioRepo
	resultadoRepo    repos.ResultadoClinicoRepo
	alertaRepo       repos.AlertaRepo
	itemBank         ItemBankService
	estimador        *irt.Estimador
	seletor          *irt.Seletor
	notifier         Notifier
}

func NewAvaliacaoService(
	db *gorm.DB,
	baseLog *logger.Logger,
	sessaoRepo repos.SessaoRepo,
	respostaRepo repos.RespostaRepo,
	questionarioRepo repos.QuestionarioRepo,
	resultadoRepo repos.ResultadoClinicoRepo,
	alertaRepo repos.AlertaRepo,
	itemBank ItemBankService,
	calc *irt.Calculadora,
	notifier Notifier,
) AvaliacaoService {
	return &avaliacaoService{
		db:               db,
		log:              baseLog.With("service", "AvaliacaoService"),
		sessaoRepo:       sessaoRepo,
		respostaRepo:     respostaRepo,
		questionarioRepo: questionarioRepo,
		resultadoRepo:    resultadoRepo,
		alertaRepo:       alertaRepo,
		itemBank:         itemBank,
		estimador:        irt.NovoEstimador(calc),
		seletor:          irt.NovoSeletor(calc),
		notifier:         notifier,
	}
}

func (s *avaliacaoService) IniciarSessao(ctx context.Context, questionarioID, usuarioID uuid.UUID, contexto datatypes.JSON) (*types.SessaoAvaliacao, error) {
	questionario, err := s.questionarioRepo.GetByID(ctx, nil, questionarioID)
	if err != nil {
		return nil, err
	}
	if questionario == nil {
		return nil, types.ErrQuestionarioNaoEncontrado
	}

	sessao := &types.SessaoAvaliacao{
		QuestionarioID: questionarioID,
		UsuarioID:      usuarioID,
		Estado:         types.SessaoEmAndamento,
		Contexto:       contexto,
		IniciadaEm:     time.Now().UTC(),
	}
	if _, err := s.sessaoRepo.Create(ctx, nil, sessao); err != nil {
		return nil, err
	}
	s.log.Info("Sessão iniciada", "sessao_id", sessao.ID, "usuario_id", usuarioID)
	return sessao, nil
}

func (s *avaliacaoService) RegistrarResposta(ctx context.Context, sessaoID, itemID uuid.UUID, valor, tempoResposta float64) (*ResultadoResposta, error) {
	if valor < 0 || valor > 1 {
		return nil, types.ErrValorInvalido
	}

	sessao, err := s.sessaoRepo.GetByID(ctx, nil, sessaoID)
	if err != nil {
		return nil, err
	}
	if sessao == nil {
		return nil, types.ErrSessaoNaoEncontrada
	}
	if !sessao.AceitaRespostas() {
		return nil, &types.ErrEstadoInvalido{Operacao: "registrar resposta", Estado: sessao.Estado}
	}

	item, err := s.itemBank.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, types.ErrItemDesconhecido
	}

	anteriores, err := s.respostaRepo.ListBySessao(ctx, nil, sessaoID)
	if err != nil {
		return nil, err
	}
	for _, r := range anteriores {
		if r.ItemID == itemID {
			return nil, types.ErrItemJaRespondido
		}
	}

	resposta := &types.RespostaItem{
		SessaoID:      sessaoID,
		ItemID:        itemID,
		Valor:         valor,
		TempoResposta: tempoResposta,
		RespondidaEm:  time.Now().UTC(),
	}
	if _, err := s.respostaRepo.Append(ctx, nil, resposta); err != nil {
		return nil, err
	}

	// Theta/SEM are always recomputed from the full stored list, never
	// accumulated incrementally. This is what makes replay idempotent.
	respostas, err := s.respostasDaSessao(ctx, sessaoID)
	if err != nil {
		return nil, err
	}
	theta, sem, semValido := s.estimar(respostas)

	decisao := irt.AvaliarParada(len(respostas), semOuInfinito(sem, semValido), false)

	resultado := &ResultadoResposta{
		Theta:     theta,
		SEM:       sem,
		SEMValido: semValido,
		DeveParar: decisao.DeveParar,
		Motivo:    decisao.Motivo,
	}

	if !decisao.DeveParar {
		proximo, err := s.selecionarProximo(ctx, sessao, respostas, theta)
		if err != nil {
			return nil, err
		}
		if proximo == nil {
			decisao = irt.AvaliarParada(len(respostas), semOuInfinito(sem, semValido), true)
			resultado.DeveParar = decisao.DeveParar
			resultado.Motivo = decisao.Motivo
		} else {
			resultado.ProximoItem = proximo
		}
	}

	if err := s.sessaoRepo.UpdateFields(ctx, nil, sessaoID, map[string]any{
		"theta":      theta,
		"sem":        sem,
		"updated_at": time.Now().UTC(),
	}); err != nil {
		return nil, err
	}

	s.log.Debug("Resposta registrada",
		"sessao_id", sessaoID,
		"respostas", len(respostas),
		"theta", theta,
		"sem", sem,
		"deve_parar", resultado.DeveParar,
	)
	return resultado, nil
}

func (s *avaliacaoService) PausarSessao(ctx context.Context, sessaoID uuid.UUID) (*types.SessaoAvaliacao, error) {
	return s.transicao(ctx, sessaoID, func(sessao *types.SessaoAvaliacao) error {
		return sessao.Pausar()
	})
}

func (s *avaliacaoService) RetomarSessao(ctx context.Context, sessaoID uuid.UUID) (*types.SessaoAvaliacao, error) {
	return s.transicao(ctx, sessaoID, func(sessao *types.SessaoAvaliacao) error {
		return sessao.Retomar()
	})
}

func (s *avaliacaoService) transicao(ctx context.Context, sessaoID uuid.UUID, aplicar func(*types.SessaoAvaliacao) error) (*types.SessaoAvaliacao, error) {
	sessao, err := s.sessaoRepo.GetByID(ctx, nil, sessaoID)
	if err != nil {
		return nil, err
	}
	if sessao == nil {
		return nil, types.ErrSessaoNaoEncontrada
	}
	if err := aplicar(sessao); err != nil {
		return nil, err
	}
	if err := s.sessaoRepo.UpdateFields(ctx, nil, sessaoID, map[string]any{
		"estado":     sessao.Estado,
		"updated_at": time.Now().UTC(),
	}); err != nil {
		return nil, err
	}
	return sessao, nil
}

func (s *avaliacaoService) FinalizarSessao(ctx context.Context, sessaoID uuid.UUID) (*ResultadoFinalizacao, error) {
	sessao, err := s.sessaoRepo.GetByID(ctx, nil, sessaoID)
	if err != nil {
		return nil, err
	}
	if sessao == nil {
		return nil, types.ErrSessaoNaoEncontrada
	}
	agora := time.Now().UTC()
	if err := sessao.Finalizar(agora); err != nil {
		return nil, err
	}
	if err := s.sessaoRepo.UpdateFields(ctx, nil, sessaoID, map[string]any{
		"estado":        sessao.Estado,
		"finalizada_em": agora,
		"updated_at":    agora,
	}); err != nil {
		return nil, err
	}

	respostas, err := s.respostasDaSessao(ctx, sessaoID)
	if err != nil {
		return nil, err
	}
	theta, _, temTheta := s.estimar(respostas)

	resultados, err := s.resultadoRepo.ListBySessao(ctx, nil, sessaoID)
	if err != nil {
		return nil, err
	}
	interpretacoes := make([]clinical.Interpretacao, 0, len(resultados))
	for _, r := range resultados {
		interpretacoes = append(interpretacoes, clinical.Interpretacao{
			Instrumento:        r.Instrumento,
			Score:              r.Score,
			ScoreMaximo:        r.ScoreMaximo,
			Percentual:         r.Percentual,
			Categoria:          r.Categoria,
			NivelAlerta:        r.NivelAlerta,
			RequerAcaoImediata: r.RequerAcaoImediata,
			Descricao:          r.Descricao,
		})
	}

	resultado := &ResultadoFinalizacao{Sessao: sessao}
	if len(interpretacoes) > 0 {
		resultado.Interpretacoes = interpretacoes
		combinado := clinical.AnalisarAlertasCombinados(interpretacoes...)
		resultado.Combinado = &combinado
	}

	sinais := clinical.DetectarPadroes(respostas)
	sinais = append(sinais, clinical.SinaisClinicos(theta, temTheta, interpretacoes, respostas)...)
	alertas, err := s.criarAlertas(ctx, sessao, sinais)
	if err != nil {
		return nil, err
	}
	resultado.Alertas = alertas

	if s.notifier != nil && len(alertas) > 0 {
		if err := s.notifier.Publish(ctx, alertas); err != nil {
			// Notification is a collaborator concern; the finalization
			// result is already durable at this point.
			s.log.Warn("Falha ao publicar alertas", "error", err)
		}
	}

	s.log.Info("Sessão finalizada",
		"sessao_id", sessaoID,
		"respostas", len(respostas),
		"interpretacoes", len(interpretacoes),
		"alertas", len(alertas),
	)
	return resultado, nil
}

// respostasDaSessao loads the ordered response list and joins each row with
// its item's calibration.
func (s *avaliacaoService) respostasDaSessao(ctx context.Context, sessaoID uuid.UUID) ([]irt.Resposta, error) {
	linhas, err := s.respostaRepo.ListBySessao(ctx, nil, sessaoID)
	if err != nil {
		return nil, err
	}
	respostas := make([]irt.Resposta, 0, len(linhas))
	for _, linha := range linhas {
		item, err := s.itemBank.GetItem(ctx, linha.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, fmt.Errorf("resposta %s referencia item inexistente %s", linha.ID, linha.ItemID)
		}
		respostas = append(respostas, irt.Resposta{
			ItemID:        linha.ItemID,
			Item:          parametrosDoItem(item),
			Valor:         linha.Valor,
			TempoResposta: linha.TempoResposta,
		})
	}
	return respostas, nil
}

func (s *avaliacaoService) estimar(respostas []irt.Resposta) (theta, sem float64, semValido bool) {
	est, err := s.estimador.Estimar(respostas)
	if err != nil {
		return 0, 0, false
	}
	return est.Theta, est.SEM, true
}

func (s *avaliacaoService) selecionarProximo(ctx context.Context, sessao *types.SessaoAvaliacao, respostas []irt.Resposta, theta float64) (*types.Item, error) {
	questionario, err := s.questionarioRepo.GetByID(ctx, nil, sessao.QuestionarioID)
	if err != nil {
		return nil, err
	}
	itens, err := s.itemBank.ListCandidatos(ctx, questionario)
	if err != nil {
		return nil, err
	}

	administrados := make(map[uuid.UUID]bool, len(respostas))
	for _, r := range respostas {
		administrados[r.ItemID] = true
	}
	candidatos := make([]irt.Candidato, 0, len(itens))
	porID := make(map[uuid.UUID]*types.Item, len(itens))
	for _, item := range itens {
		candidatos = append(candidatos, irt.Candidato{ID: item.ID, Item: parametrosDoItem(item)})
		porID[item.ID] = item
	}

	escolhido, ok := s.seletor.SelecionarProximo(theta, candidatos, administrados)
	if !ok {
		return nil, nil
	}
	return porID[escolhido.ID], nil
}

// semOuInfinito feeds the stopping rule a SEM that can never satisfy the
// precision threshold when no finite SEM exists yet.
func semOuInfinito(sem float64, valido bool) float64 {
	if !valido {
		return math.Inf(1)
	}
	return sem
}
