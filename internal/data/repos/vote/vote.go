package vote

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teamvote/voteboard-backend/internal/domain"
	"github.com/teamvote/voteboard-backend/internal/pkg/dbctx"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
)

type VoteRepo interface {
	Create(dbc dbctx.Context, vote *domain.Vote) (*domain.Vote, error)
	GetByID(dbc dbctx.Context, voteID uuid.UUID) (*domain.Vote, error)
	HasUserVoted(dbc dbctx.Context, userID, boardID uuid.UUID) (bool, error)
	CountByIdea(dbc dbctx.Context, boardID uuid.UUID) ([]domain.IdeaVoteCount, error)
	GetBoardVoteIDs(dbc dbctx.Context, boardID uuid.UUID) ([]uuid.UUID, error)
	GetUserVotes(dbc dbctx.Context, userID uuid.UUID) ([]domain.UserVoteRecord, error)
	MassDelete(dbc dbctx.Context, voteIDs []uuid.UUID) error
	Delete(dbc dbctx.Context, voteID uuid.UUID) error
}

type voteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVoteRepo(db *gorm.DB, baseLog *logger.Logger) VoteRepo {
	repoLog := baseLog.With("repo", "VoteRepo")
	return &voteRepo{db: db, log: repoLog}
}

func (vr *voteRepo) Create(dbc dbctx.Context, vote *domain.Vote) (*domain.Vote, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = vr.db
	}

	if err := transaction.WithContext(dbc.Ctx).Create(vote).Error; err != nil {
		return nil, err
	}
	return vote, nil
}

func (vr *voteRepo) GetByID(dbc dbctx.Context, voteID uuid.UUID) (*domain.Vote, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = vr.db
	}

	var result domain.Vote
	if err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", voteID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// HasUserVoted is a fast-path check only; the unique index on
// (user_id, board_id) is the authoritative guard against double voting.
func (vr *voteRepo) HasUserVoted(dbc dbctx.Context, userID, boardID uuid.UUID) (bool, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = vr.db
	}

	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&domain.Vote{}).
		Where("user_id = ? AND board_id = ?", userID, boardID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByIdea aggregates votes per idea via an inner join, so ideas without
// votes are omitted. Ordered by idea id for deterministic output.
func (vr *voteRepo) CountByIdea(dbc dbctx.Context, boardID uuid.UUID) ([]domain.IdeaVoteCount, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = vr.db
	}

	var results []domain.IdeaVoteCount
	if err := transaction.WithContext(dbc.Ctx).
		Model(&domain.Vote{}).
		Select(`"idea"."id" AS id, COUNT("vote"."id") AS votes_count`).
		Joins(`JOIN "idea" ON "idea"."id" = "vote"."idea_id"`).
		Where(`"idea"."board_id" = ?`, boardID).
		Group(`"idea"."id"`).
		Order(`"idea"."id"`).
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (vr *voteRepo) GetBoardVoteIDs(dbc dbctx.Context, boardID uuid.UUID) ([]uuid.UUID, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = vr.db
	}

	var ids []uuid.UUID
	if err := transaction.WithContext(dbc.Ctx).
		Model(&domain.Vote{}).
		Where("board_id = ?", boardID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (vr *voteRepo) GetUserVotes(dbc dbctx.Context, userID uuid.UUID) ([]domain.UserVoteRecord, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = vr.db
	}

	var results []domain.UserVoteRecord
	if err := transaction.WithContext(dbc.Ctx).
		Model(&domain.Vote{}).
		Select(`"vote"."id" AS vote_id, "vote"."idea_id" AS idea_id, "idea"."title" AS idea_title, "vote"."board_id" AS board_id`).
		Joins(`JOIN "idea" ON "idea"."id" = "vote"."idea_id"`).
		Where(`"vote"."user_id" = ?`, userID).
		Order(`"vote"."created_at", "vote"."id"`).
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (vr *voteRepo) MassDelete(dbc dbctx.Context, voteIDs []uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = vr.db
	}

	if len(voteIDs) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id IN ?", voteIDs).
		Delete(&domain.Vote{}).Error
}

func (vr *voteRepo) Delete(dbc dbctx.Context, voteID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = vr.db
	}

	return transaction.WithContext(dbc.Ctx).
		Where("id = ?", voteID).
		Delete(&domain.Vote{}).Error
}
