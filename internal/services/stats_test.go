package services

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/teamvote/voteboard-backend/internal/domain"
)

func TestSharePercentagesEmptyWhenNoVotes(t *testing.T) {
	got := SharePercentages(nil)
	if len(got) != 0 {
		t.Fatalf("percentages: want empty, got %d entries", len(got))
	}

	got = SharePercentages([]domain.IdeaVoteCount{
		{ID: uuid.New(), VotesCount: 0},
		{ID: uuid.New(), VotesCount: 0},
	})
	if len(got) != 0 {
		t.Fatalf("percentages with zero counts: want empty, got %d entries", len(got))
	}
}

func TestSharePercentagesSplit(t *testing.T) {
	ideaA := uuid.New()
	ideaB := uuid.New()

	got := SharePercentages([]domain.IdeaVoteCount{
		{ID: ideaA, VotesCount: 1},
		{ID: ideaB, VotesCount: 3},
	})
	if len(got) != 2 {
		t.Fatalf("percentages: want 2 entries, got %d", len(got))
	}
	if got[0].ID != ideaA || math.Abs(got[0].PercentVotes-25.0) > 1e-9 {
		t.Fatalf("idea A: want 25%%, got %v", got[0])
	}
	if got[1].ID != ideaB || math.Abs(got[1].PercentVotes-75.0) > 1e-9 {
		t.Fatalf("idea B: want 75%%, got %v", got[1])
	}
}

func TestSharePercentagesSumTo100(t *testing.T) {
	counts := []domain.IdeaVoteCount{
		{ID: uuid.New(), VotesCount: 1},
		{ID: uuid.New(), VotesCount: 1},
		{ID: uuid.New(), VotesCount: 1},
	}
	got := SharePercentages(counts)

	var sum float64
	for _, p := range got {
		sum += p.PercentVotes
	}
	if math.Abs(sum-100.0) > 1e-9 {
		t.Fatalf("percent sum: want 100, got %v", sum)
	}
}

func TestPickWinnersNoCounts(t *testing.T) {
	got := PickWinners(nil)
	if got.WinnersCount != 0 {
		t.Fatalf("winners count: want 0, got %d", got.WinnersCount)
	}
	if got.IDs == nil || len(got.IDs) != 0 {
		t.Fatalf("winner ids: want empty non-nil slice, got %v", got.IDs)
	}
}

func TestPickWinnersSingle(t *testing.T) {
	ideaA := uuid.New()
	ideaB := uuid.New()

	got := PickWinners([]domain.IdeaVoteCount{
		{ID: ideaA, VotesCount: 5},
		{ID: ideaB, VotesCount: 2},
	})
	if got.WinnersCount != 5 {
		t.Fatalf("winners count: want 5, got %d", got.WinnersCount)
	}
	if len(got.IDs) != 1 || got.IDs[0] != ideaA {
		t.Fatalf("winner ids: want [%s], got %v", ideaA, got.IDs)
	}
}

func TestPickWinnersKeepsTies(t *testing.T) {
	ideaA := uuid.New()
	ideaB := uuid.New()
	ideaC := uuid.New()

	got := PickWinners([]domain.IdeaVoteCount{
		{ID: ideaA, VotesCount: 3},
		{ID: ideaB, VotesCount: 3},
		{ID: ideaC, VotesCount: 1},
	})
	if got.WinnersCount != 3 {
		t.Fatalf("winners count: want 3, got %d", got.WinnersCount)
	}
	if len(got.IDs) != 2 {
		t.Fatalf("winner ids: want 2 tied ideas, got %v", got.IDs)
	}
	if got.IDs[0] != ideaA || got.IDs[1] != ideaB {
		t.Fatalf("winner ids: want [%s %s], got %v", ideaA, ideaB, got.IDs)
	}
}
