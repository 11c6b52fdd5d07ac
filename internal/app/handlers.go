package app

import (
	httpH "github.com/teamvote/voteboard-backend/internal/http/handlers"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
)

type Handlers struct {
	Board  *httpH.BoardHandler
	Idea   *httpH.IdeaHandler
	User   *httpH.UserHandler
	Vote   *httpH.VoteHandler
	Health *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Board:  httpH.NewBoardHandler(serviceset.Board, serviceset.Stats, log),
		Idea:   httpH.NewIdeaHandler(serviceset.Idea, log),
		User:   httpH.NewUserHandler(serviceset.User, log),
		Vote:   httpH.NewVoteHandler(serviceset.Vote, log),
		Health: httpH.NewHealthHandler(),
	}
}
