package idea

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teamvote/voteboard-backend/internal/domain"
	"github.com/teamvote/voteboard-backend/internal/pkg/dbctx"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
)

type IdeaRepo interface {
	Create(dbc dbctx.Context, idea *domain.Idea) (*domain.Idea, error)
	GetByID(dbc dbctx.Context, ideaID uuid.UUID) (*domain.Idea, error)
	GetAllForBoard(dbc dbctx.Context, boardID uuid.UUID) ([]*domain.Idea, error)
	UpdateTitle(dbc dbctx.Context, ideaID uuid.UUID, title string) (*domain.Idea, error)
	UpdateDescription(dbc dbctx.Context, ideaID uuid.UUID, description string) (*domain.Idea, error)
	Delete(dbc dbctx.Context, ideaID uuid.UUID) error
}

type ideaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIdeaRepo(db *gorm.DB, baseLog *logger.Logger) IdeaRepo {
	repoLog := baseLog.With("repo", "IdeaRepo")
	return &ideaRepo{db: db, log: repoLog}
}

func (ir *ideaRepo) Create(dbc dbctx.Context, idea *domain.Idea) (*domain.Idea, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ir.db
	}

	if err := transaction.WithContext(dbc.Ctx).Create(idea).Error; err != nil {
		return nil, err
	}
	return idea, nil
}

func (ir *ideaRepo) GetByID(dbc dbctx.Context, ideaID uuid.UUID) (*domain.Idea, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ir.db
	}

	var result domain.Idea
	if err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", ideaID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// GetAllForBoard keeps a stable arrival order: created_at first, id as the
// tiebreaker for rows created within the same tick.
func (ir *ideaRepo) GetAllForBoard(dbc dbctx.Context, boardID uuid.UUID) ([]*domain.Idea, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ir.db
	}

	var results []*domain.Idea
	if err := transaction.WithContext(dbc.Ctx).
		Where("board_id = ?", boardID).
		Order("created_at, id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ir *ideaRepo) UpdateTitle(dbc dbctx.Context, ideaID uuid.UUID, title string) (*domain.Idea, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ir.db
	}

	if err := transaction.WithContext(dbc.Ctx).
		Model(&domain.Idea{}).
		Where("id = ?", ideaID).
		Update("title", title).Error; err != nil {
		return nil, err
	}
	return ir.GetByID(dbctx.Context{Ctx: dbc.Ctx, Tx: transaction}, ideaID)
}

func (ir *ideaRepo) UpdateDescription(dbc dbctx.Context, ideaID uuid.UUID, description string) (*domain.Idea, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ir.db
	}

	if err := transaction.WithContext(dbc.Ctx).
		Model(&domain.Idea{}).
		Where("id = ?", ideaID).
		Update("description", description).Error; err != nil {
		return nil, err
	}
	return ir.GetByID(dbctx.Context{Ctx: dbc.Ctx, Tx: transaction}, ideaID)
}

func (ir *ideaRepo) Delete(dbc dbctx.Context, ideaID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ir.db
	}

	return transaction.WithContext(dbc.Ctx).
		Where("id = ?", ideaID).
		Delete(&domain.Idea{}).Error
}
