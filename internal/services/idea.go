package services

import (
	"github.com/google/uuid"

	"github.com/teamvote/voteboard-backend/internal/data/uow"
	"github.com/teamvote/voteboard-backend/internal/domain"
	"github.com/teamvote/voteboard-backend/internal/pkg/dbctx"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
	"github.com/teamvote/voteboard-backend/internal/platform/apierr"
)

type IdeaService interface {
	Create(dbc dbctx.Context, boardID uuid.UUID, title, description string) (*domain.Idea, error)
	Get(dbc dbctx.Context, ideaID uuid.UUID) (*domain.Idea, error)
	ListForBoard(dbc dbctx.Context, boardID uuid.UUID) ([]*domain.Idea, error)
	ChangeTitle(dbc dbctx.Context, ideaID uuid.UUID, title string) (*domain.Idea, error)
	ChangeDescription(dbc dbctx.Context, ideaID uuid.UUID, description string) (*domain.Idea, error)
	Delete(dbc dbctx.Context, ideaID uuid.UUID) error
}

type ideaService struct {
	uow *uow.UnitOfWork
	log *logger.Logger
}

func NewIdeaService(u *uow.UnitOfWork, log *logger.Logger) IdeaService {
	serviceLog := log.With("service", "IdeaService")
	return &ideaService{uow: u, log: serviceLog}
}

// checkBoardDraft re-validates that the idea's parent board is still in
// draft; every idea mutation goes through it inside the open scope.
func (is *ideaService) checkBoardDraft(s *uow.Scope, boardID uuid.UUID, operation string) error {
	board, err := s.Boards.GetByID(s.DBC, boardID)
	if err != nil {
		return err
	}
	if board == nil {
		return apierr.NotFound("board", boardID)
	}
	if board.Status != domain.BoardStatusDraft {
		return apierr.InvalidTransition(operation, boardID,
			string(board.Status), string(domain.BoardStatusDraft))
	}
	return nil
}

func (is *ideaService) Create(dbc dbctx.Context, boardID uuid.UUID, title, description string) (*domain.Idea, error) {
	var created *domain.Idea
	err := is.uow.Run(dbc, func(s *uow.Scope) error {
		if err := is.checkBoardDraft(s, boardID, "creating idea"); err != nil {
			return err
		}

		idea, err := s.Ideas.Create(s.DBC, &domain.Idea{
			Title:       title,
			Description: description,
			BoardID:     boardID,
		})
		if err != nil {
			return err
		}
		created = idea

		is.log.Info("New idea was successfully created",
			"board_id", boardID.String(), "idea_id", idea.ID.String())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (is *ideaService) Get(dbc dbctx.Context, ideaID uuid.UUID) (*domain.Idea, error) {
	var found *domain.Idea
	err := is.uow.Run(dbc, func(s *uow.Scope) error {
		idea, err := s.Ideas.GetByID(s.DBC, ideaID)
		if err != nil {
			return err
		}
		if idea == nil {
			return apierr.NotFound("idea", ideaID)
		}
		found = idea
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (is *ideaService) ListForBoard(dbc dbctx.Context, boardID uuid.UUID) ([]*domain.Idea, error) {
	var ideas []*domain.Idea
	err := is.uow.Run(dbc, func(s *uow.Scope) error {
		board, err := s.Boards.GetByID(s.DBC, boardID)
		if err != nil {
			return err
		}
		if board == nil {
			return apierr.NotFound("board", boardID)
		}

		all, err := s.Ideas.GetAllForBoard(s.DBC, boardID)
		if err != nil {
			return err
		}
		ideas = all
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ideas, nil
}

func (is *ideaService) ChangeTitle(dbc dbctx.Context, ideaID uuid.UUID, title string) (*domain.Idea, error) {
	var updated *domain.Idea
	err := is.uow.Run(dbc, func(s *uow.Scope) error {
		idea, err := is.Get(s.DBC, ideaID)
		if err != nil {
			return err
		}
		if err := is.checkBoardDraft(s, idea.BoardID, "changing idea title"); err != nil {
			return err
		}

		updated, err = s.Ideas.UpdateTitle(s.DBC, ideaID, title)
		if err != nil {
			return err
		}

		is.log.Info("Idea title changed successfully",
			"idea_id", ideaID.String(), "old_title", idea.Title, "new_title", title)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (is *ideaService) ChangeDescription(dbc dbctx.Context, ideaID uuid.UUID, description string) (*domain.Idea, error) {
	var updated *domain.Idea
	err := is.uow.Run(dbc, func(s *uow.Scope) error {
		idea, err := is.Get(s.DBC, ideaID)
		if err != nil {
			return err
		}
		if err := is.checkBoardDraft(s, idea.BoardID, "changing idea description"); err != nil {
			return err
		}

		updated, err = s.Ideas.UpdateDescription(s.DBC, ideaID, description)
		if err != nil {
			return err
		}

		is.log.Info("Idea description changed successfully",
			"idea_id", ideaID.String(), "old_desc", idea.Description, "new_desc", description)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (is *ideaService) Delete(dbc dbctx.Context, ideaID uuid.UUID) error {
	return is.uow.Run(dbc, func(s *uow.Scope) error {
		idea, err := is.Get(s.DBC, ideaID)
		if err != nil {
			return err
		}
		if err := is.checkBoardDraft(s, idea.BoardID, "deleting idea"); err != nil {
			return err
		}

		if err := s.Ideas.Delete(s.DBC, ideaID); err != nil {
			return err
		}

		is.log.Info("Idea deleted successfully",
			"idea_id", ideaID.String(), "board_id", idea.BoardID.String())
		return nil
	})
}
