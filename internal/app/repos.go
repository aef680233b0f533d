package app

import (
	"gorm.io/gorm"

	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/repos"
)

type Repos struct {
	Item             repos.ItemRepo
	Questionario     repos.QuestionarioRepo
	Sessao           repos.SessaoRepo
	Resposta         repos.RespostaRepo
	ResultadoClinico repos.ResultadoClinicoRepo
	Alerta           repos.AlertaRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Item:             repos.NewItemRepo(db, log),
		Questionario:     repos.NewQuestionarioRepo(db, log),
		Sessao:           repos.NewSessaoRepo(db, log),
		Resposta:         repos.NewRespostaRepo(db, log),
		ResultadoClinico: repos.NewResultadoClinicoRepo(db, log),
		Alerta:           repos.NewAlertaRepo(db, log),
	}
}
