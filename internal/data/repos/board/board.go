package board

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teamvote/voteboard-backend/internal/domain"
	"github.com/teamvote/voteboard-backend/internal/pkg/dbctx"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
)

type BoardRepo interface {
	Create(dbc dbctx.Context, board *domain.Board) (*domain.Board, error)
	GetByID(dbc dbctx.Context, boardID uuid.UUID) (*domain.Board, error)
	GetAll(dbc dbctx.Context) ([]*domain.Board, error)
	UpdateStatus(dbc dbctx.Context, boardID uuid.UUID, status domain.BoardStatus) (*domain.Board, error)
}

type boardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBoardRepo(db *gorm.DB, baseLog *logger.Logger) BoardRepo {
	repoLog := baseLog.With("repo", "BoardRepo")
	return &boardRepo{db: db, log: repoLog}
}

func (br *boardRepo) Create(dbc dbctx.Context, board *domain.Board) (*domain.Board, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = br.db
	}

	if err := transaction.WithContext(dbc.Ctx).Create(board).Error; err != nil {
		return nil, err
	}
	return board, nil
}

// GetByID returns (nil, nil) when the board does not exist; the caller
// decides whether that is an error.
func (br *boardRepo) GetByID(dbc dbctx.Context, boardID uuid.UUID) (*domain.Board, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = br.db
	}

	var result domain.Board
	if err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", boardID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (br *boardRepo) GetAll(dbc dbctx.Context) ([]*domain.Board, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = br.db
	}

	var results []*domain.Board
	if err := transaction.WithContext(dbc.Ctx).
		Order("created_at, id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (br *boardRepo) UpdateStatus(dbc dbctx.Context, boardID uuid.UUID, status domain.BoardStatus) (*domain.Board, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = br.db
	}

	if err := transaction.WithContext(dbc.Ctx).
		Model(&domain.Board{}).
		Where("id = ?", boardID).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	return br.GetByID(dbctx.Context{Ctx: dbc.Ctx, Tx: transaction}, boardID)
}
