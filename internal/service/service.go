// Package service is the policy and data layer. Every operation takes an
// explicit Session; mutating operations are authorized first, then applied
// together with their audit entry in a single transaction so either both
// persist or neither does.
package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Daancoria/inventoryapp/internal/model"
	"github.com/Daancoria/inventoryapp/internal/policy"
	"github.com/Daancoria/inventoryapp/internal/store"
)

// Service exposes the core operations over one database handle.
type Service struct {
	db *sql.DB
}

// New creates a Service over an open database.
func New(db *sql.DB) *Service {
	return &Service{db: db}
}

// authorize fails with ErrForbidden when the session's role may not perform op.
// It runs before any validation or mutation, so denied calls never touch state.
func authorize(sess model.Session, op policy.Operation) error {
	if !policy.Allow(sess.Role, op) {
		return fmt.Errorf("%w: %s requires higher privileges", model.ErrForbidden, op)
	}
	return nil
}

// storage wraps an underlying persistence fault as ErrStorage. The caller
// treats these as fatal to the in-flight operation.
func storage(err error) error {
	return fmt.Errorf("%w: %w", model.ErrStorage, err)
}

// withTx runs fn inside a transaction. Any error from fn rolls the whole
// transaction back, including an already-written audit entry.
func (s *Service) withTx(ctx context.Context, fn func(tx store.DBTX) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storage(err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storage(err)
	}
	return nil
}
