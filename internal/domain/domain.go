package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoardStatus is the board lifecycle state. Transitions are guarded by
// BoardService: closed is terminal, reverting to draft purges votes.
type BoardStatus string

const (
	BoardStatusDraft     BoardStatus = "draft"
	BoardStatusPublished BoardStatus = "published"
	BoardStatusClosed    BoardStatus = "closed"
)

func (s BoardStatus) Valid() bool {
	switch s {
	case BoardStatusDraft, BoardStatusPublished, BoardStatusClosed:
		return true
	}
	return false
}

type Board struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string      `gorm:"type:varchar(100);not null;column:title" json:"title"`
	Status    BoardStatus `gorm:"type:varchar(16);not null;default:draft;column:status" json:"status"`
	CreatedAt time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null" json:"updated_at"`
}

func (Board) TableName() string { return "board" }

func (b *Board) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = BoardStatusDraft
	}
	return nil
}

type Idea struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(100);not null;column:title" json:"title"`
	Description string    `gorm:"type:varchar(1000);column:description" json:"description"`
	BoardID     uuid.UUID `gorm:"type:uuid;not null;index;column:board_id" json:"board_id"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (Idea) TableName() string { return "idea" }

func (i *Idea) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// User is soft-deleted only: votes cast by a deleted user are kept for
// audit/history.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null;column:name" json:"name"`
	IsDeleted bool      `gorm:"not null;default:false;column:is_deleted" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string { return "user" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Vote carries the board id denormalized from its idea so the composite
// unique index can enforce one vote per user per board at the storage level.
type Vote struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	IdeaID    uuid.UUID `gorm:"type:uuid;not null;index;column:idea_id" json:"idea_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_vote_user_board;column:user_id" json:"user_id"`
	BoardID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_vote_user_board;column:board_id" json:"board_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Vote) TableName() string { return "vote" }

func (v *Vote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// IdeaVoteCount is one row of the per-board vote aggregate. Ideas with zero
// votes do not appear (inner join).
type IdeaVoteCount struct {
	ID         uuid.UUID `json:"id"`
	VotesCount int64     `json:"votes_count"`
}

// IdeaVotePercent is an idea's share of all votes on its board.
type IdeaVotePercent struct {
	ID           uuid.UUID `json:"id"`
	PercentVotes float64   `json:"percent_votes"`
}

// Winners lists every idea tied at the maximum vote count.
type Winners struct {
	IDs          []uuid.UUID `json:"id"`
	WinnersCount int64       `json:"winners_count"`
}

// UserVoteRecord is one row of a user's voting history.
type UserVoteRecord struct {
	VoteID    uuid.UUID `json:"vote_id"`
	IdeaID    uuid.UUID `json:"idea_id"`
	IdeaTitle string    `json:"idea_title"`
	BoardID   uuid.UUID `json:"board_id"`
}
