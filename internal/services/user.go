package services

import (
	"github.com/google/uuid"

	"github.com/teamvote/voteboard-backend/internal/data/uow"
	"github.com/teamvote/voteboard-backend/internal/domain"
	"github.com/teamvote/voteboard-backend/internal/pkg/dbctx"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
	"github.com/teamvote/voteboard-backend/internal/platform/apierr"
)

type UserService interface {
	Create(dbc dbctx.Context, name string) (*domain.User, error)
	Get(dbc dbctx.Context, userID uuid.UUID) (*domain.User, error)
	ChangeName(dbc dbctx.Context, userID uuid.UUID, name string) (*domain.User, error)
	Delete(dbc dbctx.Context, userID uuid.UUID) error
	VoteHistory(dbc dbctx.Context, userID uuid.UUID) ([]domain.UserVoteRecord, error)
}

type userService struct {
	uow *uow.UnitOfWork
	log *logger.Logger
}

func NewUserService(u *uow.UnitOfWork, log *logger.Logger) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{uow: u, log: serviceLog}
}

func (us *userService) Create(dbc dbctx.Context, name string) (*domain.User, error) {
	var created *domain.User
	err := us.uow.Run(dbc, func(s *uow.Scope) error {
		user, err := s.Users.Create(s.DBC, &domain.User{Name: name})
		if err != nil {
			return err
		}
		created = user
		us.log.Info("New user was successfully created", "user_id", user.ID.String())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (us *userService) Get(dbc dbctx.Context, userID uuid.UUID) (*domain.User, error) {
	var found *domain.User
	err := us.uow.Run(dbc, func(s *uow.Scope) error {
		user, err := s.Users.GetByID(s.DBC, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return apierr.NotFound("user", userID)
		}
		found = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (us *userService) ChangeName(dbc dbctx.Context, userID uuid.UUID, name string) (*domain.User, error) {
	var updated *domain.User
	err := us.uow.Run(dbc, func(s *uow.Scope) error {
		user, err := us.Get(s.DBC, userID)
		if err != nil {
			return err
		}

		updated, err = s.Users.UpdateName(s.DBC, userID, name)
		if err != nil {
			return err
		}

		us.log.Info("User's name was successfully updated",
			"user_id", userID.String(), "old_name", user.Name, "new_name", name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete soft-deletes the user; their votes stay in the system for history.
func (us *userService) Delete(dbc dbctx.Context, userID uuid.UUID) error {
	return us.uow.Run(dbc, func(s *uow.Scope) error {
		if _, err := us.Get(s.DBC, userID); err != nil {
			return err
		}

		if err := s.Users.SoftDelete(s.DBC, userID); err != nil {
			return err
		}

		us.log.Info("User was successfully deleted but their votes are kept in the system",
			"user_id", userID.String())
		return nil
	})
}

func (us *userService) VoteHistory(dbc dbctx.Context, userID uuid.UUID) ([]domain.UserVoteRecord, error) {
	var history []domain.UserVoteRecord
	err := us.uow.Run(dbc, func(s *uow.Scope) error {
		if _, err := us.Get(s.DBC, userID); err != nil {
			return err
		}

		records, err := s.Votes.GetUserVotes(s.DBC, userID)
		if err != nil {
			return err
		}
		history = records
		return nil
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}
