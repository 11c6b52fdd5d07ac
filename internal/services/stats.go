package services

import (
	"github.com/google/uuid"

	"github.com/teamvote/voteboard-backend/internal/data/uow"
	"github.com/teamvote/voteboard-backend/internal/domain"
	"github.com/teamvote/voteboard-backend/internal/pkg/dbctx"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
	"github.com/teamvote/voteboard-backend/internal/platform/apierr"
)

// StatsService derives read-only voting figures for a board. All three
// views come from the same per-idea count aggregate.
type StatsService interface {
	VotingStats(dbc dbctx.Context, boardID uuid.UUID) ([]domain.IdeaVoteCount, error)
	Percentages(dbc dbctx.Context, boardID uuid.UUID) ([]domain.IdeaVotePercent, error)
	Winner(dbc dbctx.Context, boardID uuid.UUID) (*domain.Winners, error)
}

type statsService struct {
	uow *uow.UnitOfWork
	log *logger.Logger
}

func NewStatsService(u *uow.UnitOfWork, log *logger.Logger) StatsService {
	serviceLog := log.With("service", "StatsService")
	return &statsService{uow: u, log: serviceLog}
}

func (ss *statsService) VotingStats(dbc dbctx.Context, boardID uuid.UUID) ([]domain.IdeaVoteCount, error) {
	var counts []domain.IdeaVoteCount
	err := ss.uow.Run(dbc, func(s *uow.Scope) error {
		board, err := s.Boards.GetByID(s.DBC, boardID)
		if err != nil {
			return err
		}
		if board == nil {
			return apierr.NotFound("board", boardID)
		}

		counts, err = s.Votes.CountByIdea(s.DBC, boardID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (ss *statsService) Percentages(dbc dbctx.Context, boardID uuid.UUID) ([]domain.IdeaVotePercent, error) {
	var percents []domain.IdeaVotePercent
	err := ss.uow.Run(dbc, func(s *uow.Scope) error {
		counts, err := ss.VotingStats(s.DBC, boardID)
		if err != nil {
			return err
		}
		percents = SharePercentages(counts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return percents, nil
}

func (ss *statsService) Winner(dbc dbctx.Context, boardID uuid.UUID) (*domain.Winners, error) {
	var winners *domain.Winners
	err := ss.uow.Run(dbc, func(s *uow.Scope) error {
		counts, err := ss.VotingStats(s.DBC, boardID)
		if err != nil {
			return err
		}
		winners = PickWinners(counts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return winners, nil
}

// SharePercentages converts per-idea counts to percent of total. Empty when
// no votes exist at all, so there is never a division by zero.
func SharePercentages(counts []domain.IdeaVoteCount) []domain.IdeaVotePercent {
	var total int64
	for _, c := range counts {
		total += c.VotesCount
	}
	if total == 0 {
		return []domain.IdeaVotePercent{}
	}

	percents := make([]domain.IdeaVotePercent, 0, len(counts))
	for _, c := range counts {
		percents = append(percents, domain.IdeaVotePercent{
			ID:           c.ID,
			PercentVotes: 100.0 * float64(c.VotesCount) / float64(total),
		})
	}
	return percents
}

// PickWinners returns every idea tied at the maximum count; ties are kept,
// never broken arbitrarily.
func PickWinners(counts []domain.IdeaVoteCount) *domain.Winners {
	if len(counts) == 0 {
		return &domain.Winners{IDs: []uuid.UUID{}, WinnersCount: 0}
	}

	var max int64
	for _, c := range counts {
		if c.VotesCount > max {
			max = c.VotesCount
		}
	}

	ids := make([]uuid.UUID, 0, 1)
	for _, c := range counts {
		if c.VotesCount == max {
			ids = append(ids, c.ID)
		}
	}
	return &domain.Winners{IDs: ids, WinnersCount: max}
}
