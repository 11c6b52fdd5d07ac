package user

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teamvote/voteboard-backend/internal/domain"
	"github.com/teamvote/voteboard-backend/internal/pkg/dbctx"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
)

type UserRepo interface {
	Create(dbc dbctx.Context, user *domain.User) (*domain.User, error)
	GetByID(dbc dbctx.Context, userID uuid.UUID) (*domain.User, error)
	UpdateName(dbc dbctx.Context, userID uuid.UUID, name string) (*domain.User, error)
	SoftDelete(dbc dbctx.Context, userID uuid.UUID) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Create(dbc dbctx.Context, user *domain.User) (*domain.User, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}

	if err := transaction.WithContext(dbc.Ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID excludes soft-deleted users: for the API a deleted user is gone.
func (ur *userRepo) GetByID(dbc dbctx.Context, userID uuid.UUID) (*domain.User, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}

	var result domain.User
	if err := transaction.WithContext(dbc.Ctx).
		Where("id = ? AND is_deleted = ?", userID, false).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (ur *userRepo) UpdateName(dbc dbctx.Context, userID uuid.UUID, name string) (*domain.User, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}

	if err := transaction.WithContext(dbc.Ctx).
		Model(&domain.User{}).
		Where("id = ?", userID).
		Update("name", name).Error; err != nil {
		return nil, err
	}
	return ur.GetByID(dbctx.Context{Ctx: dbc.Ctx, Tx: transaction}, userID)
}

// SoftDelete flips is_deleted; the row and any votes it cast are kept.
func (ur *userRepo) SoftDelete(dbc dbctx.Context, userID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}

	return transaction.WithContext(dbc.Ctx).
		Model(&domain.User{}).
		Where("id = ?", userID).
		Update("is_deleted", true).Error
}
