package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"testing"
)

// This file contains transaction management utilities for test isolation.

// ErrBeginScope is returned by Begin when the underlying transaction could
// not be started, e.g. because the pool is exhausted or the database refused
// the connection. It is distinct from ordinary query failures so callers can
// tell "the scope never opened" apart from "a query inside the scope failed".
var ErrBeginScope = errors.New("failed to open transaction scope")

// ScopeState describes the lifecycle of a transaction scope.
type ScopeState int

const (
	// StatePending means the transaction has been requested but not yet
	// acknowledged by the database.
	StatePending ScopeState = iota

	// StateOpen means the transaction handle has been delivered and may be
	// used for queries. This is the only state in which Tx is valid.
	StateOpen

	// StateRolledBack means Close has discarded the transaction. The handle
	// rejects further use with sql.ErrTxDone.
	StateRolledBack

	// StateAborted means the transaction failed to start and no usable
	// handle ever existed.
	StateAborted
)

// String returns a human-readable name for the state.
func (s ScopeState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateOpen:
		return "open"
	case StateRolledBack:
		return "rolled back"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Scope is an open database transaction dedicated to a single test. It is
// created at the start of the test, owned exclusively by that test, and
// discarded (rolled back, never committed) when the test finishes. At most
// one scope is open at any time under the sequential test execution model.
type Scope struct {
	tx     *sql.Tx
	state  ScopeState
	logger *slog.Logger
}

// Begin opens a new transaction scope on the given pool. On success the
// returned scope is in StateOpen and its handle is ready for queries.
// On failure no scope is returned and the error wraps ErrBeginScope.
func Begin(ctx context.Context, db *sql.DB) (*Scope, error) {
	scope := &Scope{
		state:  StatePending,
		logger: slog.Default().With(slog.String("component", "testdb")),
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		scope.state = StateAborted
		return nil, fmt.Errorf("%w: %v", ErrBeginScope, err)
	}

	scope.tx = tx
	scope.state = StateOpen
	return scope, nil
}

// Tx returns the scope's execution handle. It is only valid while the scope
// is open; after Close the handle rejects queries with sql.ErrTxDone.
func (s *Scope) Tx() *sql.Tx {
	return s.tx
}

// State returns the scope's current lifecycle state.
func (s *Scope) State() ScopeState {
	return s.state
}

// Close rolls the scope's transaction back, discarding every mutation made
// through its handle. Rollback errors are deliberately swallowed: a rollback
// is the expected way a scope ends, and its failure must never fail the test
// run by itself. sql.ErrTxDone (already rolled back or committed) is treated
// as success; anything else is logged and dropped. Close is idempotent.
func (s *Scope) Close() {
	if s.state != StateOpen {
		return
	}
	s.state = StateRolledBack

	err := s.tx.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		s.logger.Warn("failed to rollback transaction scope",
			slog.String("error", err.Error()))
	}
}

// WithTx runs the provided function within a database transaction.
// The transaction is automatically rolled back after the function completes,
// ensuring test isolation. This allows tests to make database modifications
// without persisting them, so every test observes the seeded baseline.
//
// The handle is delivered to fn before the test body runs, and fn returns
// before the rollback fires. If the transaction cannot be started the test
// fails immediately rather than handing out a dead handle.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	scope, err := Begin(context.Background(), db)
	if err != nil {
		t.Fatalf(
			"Failed to begin transaction: %v\nThis may indicate database connectivity issues or resource constraints",
			err,
		)
	}

	// Ensure rollback happens after the test completes or fails. A panic in
	// the test body still rolls the scope back before propagating.
	defer func() {
		if r := recover(); r != nil {
			scope.Close()
			// ALLOW-PANIC: Propagating caught panic from test body
			panic(r)
		}
		scope.Close()
	}()

	fn(t, scope.Tx())
}
