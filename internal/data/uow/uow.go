package uow

import (
	"gorm.io/gorm"

	"github.com/teamvote/voteboard-backend/internal/data/repos"
	"github.com/teamvote/voteboard-backend/internal/pkg/dbctx"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
	"github.com/teamvote/voteboard-backend/internal/platform/apierr"
)

// Scope is one open transactional boundary. Every repo field is bound to the
// same transaction; DBC carries it so nested Run calls (and sibling service
// methods) join the scope instead of opening a second transaction.
type Scope struct {
	Boards repos.BoardRepo
	Ideas  repos.IdeaRepo
	Users  repos.UserRepo
	Votes  repos.VoteRepo
	DBC    dbctx.Context
}

// UnitOfWork opens a transaction per request, hands a Scope to the caller,
// commits when the callback returns nil and rolls back otherwise. Re-entrant:
// a Run inside an already-open scope reuses the open transaction, and only
// the outermost Run commits or rolls back.
type UnitOfWork struct {
	db     *gorm.DB
	log    *logger.Logger
	boards repos.BoardRepo
	ideas  repos.IdeaRepo
	users  repos.UserRepo
	votes  repos.VoteRepo
}

func New(db *gorm.DB, baseLog *logger.Logger, boards repos.BoardRepo, ideas repos.IdeaRepo, users repos.UserRepo, votes repos.VoteRepo) *UnitOfWork {
	return &UnitOfWork{
		db:     db,
		log:    baseLog.With("component", "UnitOfWork"),
		boards: boards,
		ideas:  ideas,
		users:  users,
		votes:  votes,
	}
}

func (u *UnitOfWork) scope(dbc dbctx.Context) *Scope {
	return &Scope{
		Boards: u.boards,
		Ideas:  u.ideas,
		Users:  u.users,
		Votes:  u.votes,
		DBC:    dbc,
	}
}

func (u *UnitOfWork) Run(dbc dbctx.Context, fn func(s *Scope) error) (err error) {
	if dbc.Tx != nil {
		// Nested acquisition: join the open transaction, leave commit and
		// rollback to the outermost scope.
		return fn(u.scope(dbc))
	}

	tx := u.db.WithContext(dbc.Ctx).Begin()
	if tx.Error != nil {
		u.log.Error("Failed to begin transaction", "error", tx.Error)
		return apierr.StorageUnavailable(tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err = fn(u.scope(dbctx.Context{Ctx: dbc.Ctx, Tx: tx})); err != nil {
		// The original error always propagates; a rollback failure is logged
		// but never masks it.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			u.log.Error("Rollback failed", "error", rbErr)
		}
		return err
	}

	if err = tx.Commit().Error; err != nil {
		u.log.Error("Commit failed", "error", err)
		return err
	}
	return nil
}
