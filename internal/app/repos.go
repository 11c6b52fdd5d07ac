package app

import (
	"gorm.io/gorm"

	"github.com/teamvote/voteboard-backend/internal/data/repos"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
)

type Repos struct {
	Board repos.BoardRepo
	Idea  repos.IdeaRepo
	User  repos.UserRepo
	Vote  repos.VoteRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Board: repos.NewBoardRepo(db, log),
		Idea:  repos.NewIdeaRepo(db, log),
		User:  repos.NewUserRepo(db, log),
		Vote:  repos.NewVoteRepo(db, log),
	}
}
