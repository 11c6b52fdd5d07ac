package repos

import (
	"gorm.io/gorm"

	"github.com/teamvote/voteboard-backend/internal/data/repos/board"
	"github.com/teamvote/voteboard-backend/internal/data/repos/idea"
	"github.com/teamvote/voteboard-backend/internal/data/repos/user"
	"github.com/teamvote/voteboard-backend/internal/data/repos/vote"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
)

type BoardRepo = board.BoardRepo
type IdeaRepo = idea.IdeaRepo
type UserRepo = user.UserRepo
type VoteRepo = vote.VoteRepo

func NewBoardRepo(db *gorm.DB, baseLog *logger.Logger) BoardRepo {
	return board.NewBoardRepo(db, baseLog)
}

func NewIdeaRepo(db *gorm.DB, baseLog *logger.Logger) IdeaRepo {
	return idea.NewIdeaRepo(db, baseLog)
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return user.NewUserRepo(db, baseLog)
}

func NewVoteRepo(db *gorm.DB, baseLog *logger.Logger) VoteRepo {
	return vote.NewVoteRepo(db, baseLog)
}
