package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/teamvote/voteboard-backend/internal/domain"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(dsn string, log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	log.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&domain.Board{},
		&domain.Idea{},
		&domain.User{},
		&domain.Vote{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		table, name, sql string
	}{
		{"idea", "fk_idea_board_id",
			`FOREIGN KEY ("board_id") REFERENCES "board"("id") ON DELETE CASCADE`},
		{"vote", "fk_vote_idea_id",
			`FOREIGN KEY ("idea_id") REFERENCES "idea"("id") ON DELETE CASCADE`},
		{"vote", "fk_vote_user_id",
			`FOREIGN KEY ("user_id") REFERENCES "user"("id") ON DELETE CASCADE`},
		{"vote", "fk_vote_board_id",
			`FOREIGN KEY ("board_id") REFERENCES "board"("id") ON DELETE CASCADE`},
	}
	for _, c := range constraints {
		drop := fmt.Sprintf(`ALTER TABLE %q DROP CONSTRAINT IF EXISTS %q`, c.table, c.name)
		if err := s.db.Exec(drop).Error; err != nil {
			return fmt.Errorf("failed to drop %s: %w", c.name, err)
		}
		add := fmt.Sprintf(`ALTER TABLE %q ADD CONSTRAINT %q %s`, c.table, c.name, c.sql)
		if err := s.db.Exec(add).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", c.name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
