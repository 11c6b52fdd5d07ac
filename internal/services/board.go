package services

import (
	"github.com/google/uuid"

	"github.com/teamvote/voteboard-backend/internal/data/uow"
	"github.com/teamvote/voteboard-backend/internal/domain"
	"github.com/teamvote/voteboard-backend/internal/pkg/dbctx"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
	"github.com/teamvote/voteboard-backend/internal/platform/apierr"
)

type BoardService interface {
	Create(dbc dbctx.Context, title string) (*domain.Board, error)
	Get(dbc dbctx.Context, boardID uuid.UUID) (*domain.Board, error)
	List(dbc dbctx.Context) ([]*domain.Board, error)
	ChangeStatus(dbc dbctx.Context, boardID uuid.UUID, status domain.BoardStatus) (*domain.Board, error)
}

type boardService struct {
	uow *uow.UnitOfWork
	log *logger.Logger
}

func NewBoardService(u *uow.UnitOfWork, log *logger.Logger) BoardService {
	serviceLog := log.With("service", "BoardService")
	return &boardService{uow: u, log: serviceLog}
}

func (bs *boardService) Create(dbc dbctx.Context, title string) (*domain.Board, error) {
	var created *domain.Board
	err := bs.uow.Run(dbc, func(s *uow.Scope) error {
		board, err := s.Boards.Create(s.DBC, &domain.Board{Title: title, Status: domain.BoardStatusDraft})
		if err != nil {
			return err
		}
		created = board
		bs.log.Info("Board created successfully",
			"board_id", board.ID.String(), "title", board.Title)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (bs *boardService) Get(dbc dbctx.Context, boardID uuid.UUID) (*domain.Board, error) {
	var found *domain.Board
	err := bs.uow.Run(dbc, func(s *uow.Scope) error {
		board, err := s.Boards.GetByID(s.DBC, boardID)
		if err != nil {
			return err
		}
		if board == nil {
			return apierr.NotFound("board", boardID)
		}
		found = board
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (bs *boardService) List(dbc dbctx.Context) ([]*domain.Board, error) {
	var boards []*domain.Board
	err := bs.uow.Run(dbc, func(s *uow.Scope) error {
		all, err := s.Boards.GetAll(s.DBC)
		if err != nil {
			return err
		}
		boards = all
		return nil
	})
	if err != nil {
		return nil, err
	}
	return boards, nil
}

// ChangeStatus drives the board state machine. closed is terminal. Reverting
// to draft purges every vote under the board in the same transaction as the
// status write, so a crash can never leave published votes on a draft board.
// Any other requested transition is applied as-is, draft→closed included.
func (bs *boardService) ChangeStatus(dbc dbctx.Context, boardID uuid.UUID, status domain.BoardStatus) (*domain.Board, error) {
	var updated *domain.Board
	err := bs.uow.Run(dbc, func(s *uow.Scope) error {
		board, err := bs.Get(s.DBC, boardID)
		if err != nil {
			return err
		}

		oldStatus := board.Status
		if oldStatus == domain.BoardStatusClosed {
			return apierr.InvalidTransition("changing status of board", boardID,
				string(oldStatus), string(status))
		}

		purged := 0
		if status == domain.BoardStatusDraft && oldStatus != domain.BoardStatusDraft {
			voteIDs, err := s.Votes.GetBoardVoteIDs(s.DBC, boardID)
			if err != nil {
				return err
			}
			if err := s.Votes.MassDelete(s.DBC, voteIDs); err != nil {
				return err
			}
			purged = len(voteIDs)
		}

		board, err = s.Boards.UpdateStatus(s.DBC, boardID, status)
		if err != nil {
			return err
		}
		updated = board

		bs.log.Info("Board status changed",
			"board_id", boardID.String(),
			"old_status", string(oldStatus),
			"new_status", string(status),
			"votes_purged", purged)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
