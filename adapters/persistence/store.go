package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/Aanjaneya24/me-api-playground/pkg/apperror"
	"github.com/Aanjaneya24/me-api-playground/pkg/logger"
)

// Store is the embedded relational store session. It owns the single
// database connection; every repository operates through it.
//
// The store is bounded to one profile aggregate, so the connection pool is
// pinned to a single connection: writers and readers serialize on it, which
// keeps a committing transaction from interleaving with another writer.
type Store struct {
	db     *sql.DB
	logger logger.Logger
}

func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Single writer, and a shared in-memory database stays shared.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewStore opens (or creates) the store file at dbPath and applies the
// schema. Safe to call on an existing file.
func NewStore(dbPath string, log logger.Logger) (*Store, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, logger: log}
	if err := s.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Info("Opened profile store", zap.String("path", dbPath), zap.String("build", BuildMode))
	return s, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// WithTx runs fn inside one transaction: commit on a nil return, rollback on
// any error. The error from fn is propagated unchanged so callers keep the
// apperror kind.
func (s *Store) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperror.NewInternal("failed to begin transaction", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Warn("Transaction rollback failed", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperror.NewInternal("failed to commit transaction", err)
	}
	return nil
}
