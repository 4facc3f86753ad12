// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"
)

// Runner executes a composite write. Services depend on this interface so the
// same code path runs with or without a surrounding transaction.
type Runner interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

// Sequential runs composite writes as independent, individually committed steps.
// A failure part-way leaves earlier steps applied.
type Sequential struct{}

// Run calls fn with the unchanged context.
func (Sequential) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// TxManager manages database transactions using the context pattern.
// Nested Run calls are NOT supported: calling Run inside a Run callback
// opens a second independent transaction.
type TxManager struct {
	db Beginner
}

// NewTxManager creates a new TxManager.
func NewTxManager(db Beginner) *TxManager {
	return &TxManager{db: db}
}

// Run executes fn within a database transaction.
// On success: commits.
// On error from fn: rolls back and returns the error unchanged.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) Run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// NewRunner picks the composite-write strategy.
func NewRunner(db Beginner, atomic bool) Runner {
	if atomic {
		return NewTxManager(db)
	}
	return Sequential{}
}
