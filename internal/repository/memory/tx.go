// internal/repository/memory/tx.go
package memory

import (
	"context"
	"database/sql"

	"walletledger/pkg/db"
)

// storeTx satisfies db.TxController and repository.DBExecutor for the
// in-memory store, whose repositories never touch the executor. Begin takes
// a store-wide lock held until commit or rollback, so a read-then-append
// sequence sees the same isolation a serializable database transaction
// provides on the Postgres path.
type storeTx struct {
	store *Store
	done  bool
}

func (t *storeTx) Commit() error   { t.release(); return nil }
func (t *storeTx) Rollback() error { t.release(); return nil }

// release unlocks once; the deferred rollback after a commit is a no-op.
func (t *storeTx) release() {
	if !t.done {
		t.done = true
		t.store.txMu.Unlock()
	}
}

func (*storeTx) GetContext(context.Context, interface{}, string, ...interface{}) error {
	return sql.ErrConnDone
}

func (*storeTx) SelectContext(context.Context, interface{}, string, ...interface{}) error {
	return sql.ErrConnDone
}

func (*storeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, sql.ErrConnDone
}

func (*storeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

// TxFuncs returns transaction control functions for wiring a service on top
// of the store.
func (s *Store) TxFuncs() (db.BeginTxFunc, db.CommitTxFunc, db.RollbackTxFunc) {
	begin := func(ctx context.Context, _ db.DBTxBeginner) (db.TxController, error) {
		s.txMu.Lock()
		return &storeTx{store: s}, nil
	}
	commit := func(tx db.TxController) error { return tx.Commit() }
	rollback := func(tx db.TxController) { _ = tx.Rollback() }
	return begin, commit, rollback
}
