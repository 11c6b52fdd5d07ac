package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/teamvote/voteboard-backend/internal/data/uow"
	"github.com/teamvote/voteboard-backend/internal/domain"
	"github.com/teamvote/voteboard-backend/internal/pkg/dbctx"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
	"github.com/teamvote/voteboard-backend/internal/platform/apierr"
)

type VoteService interface {
	Create(dbc dbctx.Context, ideaID, userID uuid.UUID) (*domain.Vote, error)
	Delete(dbc dbctx.Context, voteID uuid.UUID) error
}

type voteService struct {
	uow *uow.UnitOfWork
	log *logger.Logger
}

func NewVoteService(u *uow.UnitOfWork, log *logger.Logger) VoteService {
	serviceLog := log.With("service", "VoteService")
	return &voteService{uow: u, log: serviceLog}
}

const pgUniqueViolation = "23505"

// isUniqueViolation recognizes the (user_id, board_id) unique index firing.
// Covers both GORM's translated sentinel and the raw postgres error code.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// Create casts a vote. The service-level HasUserVoted check gives the caller
// a clean error on the common path; under a race the unique index on
// (user_id, board_id) still rejects the second insert and that failure is
// reported as AlreadyVoted too.
func (vs *voteService) Create(dbc dbctx.Context, ideaID, userID uuid.UUID) (*domain.Vote, error) {
	var created *domain.Vote
	err := vs.uow.Run(dbc, func(s *uow.Scope) error {
		user, err := s.Users.GetByID(s.DBC, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return apierr.NotFound("user", userID)
		}

		idea, err := s.Ideas.GetByID(s.DBC, ideaID)
		if err != nil {
			return err
		}
		if idea == nil {
			return apierr.NotFound("idea", ideaID)
		}

		board, err := s.Boards.GetByID(s.DBC, idea.BoardID)
		if err != nil {
			return err
		}
		if board == nil {
			return apierr.NotFound("board", idea.BoardID)
		}
		if board.Status != domain.BoardStatusPublished {
			return apierr.InvalidTransition("voting", board.ID,
				string(board.Status), string(domain.BoardStatusPublished))
		}

		voted, err := s.Votes.HasUserVoted(s.DBC, userID, board.ID)
		if err != nil {
			return err
		}
		if voted {
			return apierr.AlreadyVoted(userID, board.ID)
		}

		vote, err := s.Votes.Create(s.DBC, &domain.Vote{
			IdeaID:  ideaID,
			UserID:  userID,
			BoardID: board.ID,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return apierr.AlreadyVoted(userID, board.ID)
			}
			return err
		}
		created = vote

		vs.log.Info("User successfully voted for idea",
			"vote_id", vote.ID.String(), "board_id", board.ID.String(), "user_id", userID.String())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Delete revokes a vote, allowed only while the board is still published.
func (vs *voteService) Delete(dbc dbctx.Context, voteID uuid.UUID) error {
	return vs.uow.Run(dbc, func(s *uow.Scope) error {
		vote, err := s.Votes.GetByID(s.DBC, voteID)
		if err != nil {
			return err
		}
		if vote == nil {
			return apierr.NotFound("vote", voteID)
		}

		board, err := s.Boards.GetByID(s.DBC, vote.BoardID)
		if err != nil {
			return err
		}
		if board == nil {
			return apierr.NotFound("board", vote.BoardID)
		}
		if board.Status != domain.BoardStatusPublished {
			return apierr.InvalidTransition("vote canceling", board.ID,
				string(board.Status), string(domain.BoardStatusPublished))
		}

		if err := s.Votes.Delete(s.DBC, voteID); err != nil {
			return err
		}

		vs.log.Info("Vote successfully canceled",
			"vote_id", voteID.String(), "board_id", board.ID.String())
		return nil
	})
}
