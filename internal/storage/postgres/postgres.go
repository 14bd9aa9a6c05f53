// Package postgres provides a PostgreSQL-backed implementation of the
// storage.Store interface built on gorm and the pgx driver.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mmynk/aidledger/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store implements storage.Store using PostgreSQL.
type Store struct {
	db *gorm.DB
}

// New connects to dsn, verifies the connection and migrates the schema.
func New(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	// Slow queries surface through slog like every other log line.
	gormLogger := logger.New(
		slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("open gorm postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("resolve postgres sql db handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err := migrate(db.WithContext(ctx)); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userRow{},
		&familyRow{},
		&individualRow{},
		&familyMemberRow{},
		&childRow{},
		&distributionRow{},
		&allocationRow{},
		&needRow{},
		&pendingRequestRow{},
		&approvalLogRow{},
	); err != nil {
		return err
	}
	// AutoMigrate cannot express these without association fields.
	return db.Exec(`
		DO $$ BEGIN
			ALTER TABLE distribution_recipients
				ADD CONSTRAINT distribution_recipients_single_ref
				CHECK (individual_id IS NULL OR child_id IS NULL);
		EXCEPTION WHEN duplicate_object THEN NULL;
		END $$;
		DO $$ BEGIN
			ALTER TABLE distribution_recipients
				ADD CONSTRAINT distribution_recipients_quantity_positive
				CHECK (quantity_received >= 1);
		EXCEPTION WHEN duplicate_object THEN NULL;
		END $$;
	`).Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
