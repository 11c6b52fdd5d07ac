package app

import (
	"gorm.io/gorm"

	"github.com/teamvote/voteboard-backend/internal/data/uow"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
	"github.com/teamvote/voteboard-backend/internal/services"
)

type Services struct {
	UoW   *uow.UnitOfWork
	Board services.BoardService
	Idea  services.IdeaService
	User  services.UserService
	Vote  services.VoteService
	Stats services.StatsService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	unit := uow.New(db, log, reposet.Board, reposet.Idea, reposet.User, reposet.Vote)
	return Services{
		UoW:   unit,
		Board: services.NewBoardService(unit, log),
		Idea:  services.NewIdeaService(unit, log),
		User:  services.NewUserService(unit, log),
		Vote:  services.NewVoteService(unit, log),
		Stats: services.NewStatsService(unit, log),
	}
}
