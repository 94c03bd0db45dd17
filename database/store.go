package database

import (
	"database/sql"
	"errors"
	"fmt"

	"golang-sportplans/helpers"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// ErrNotApplied is returned by a conditional write that matched no row:
// either the target is gone or the caller no longer owns its plan.
var ErrNotApplied = errors.New("conditional write matched no rows")

const mysqlDuplicateEntry = 1062

// Store owns every SQL statement of the service. It is safe for concurrent
// use; the pool is shared and connections are acquired per statement.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Page limits a listing. A zero Limit returns every row.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) apply(query string, args []any) (string, []any) {
	if p.Limit <= 0 {
		return query, args
	}
	return query + " LIMIT ? OFFSET ?", append(args, p.Limit, p.Offset)
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, helpers.ErrStore, err)
}

func isDuplicate(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

func applied(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr(op, err)
	}
	if n == 0 {
		return ErrNotApplied
	}
	return nil
}

func safeRollback(tx *sqlx.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		log.Warn().Err(err).Msg("rollback failed")
	}
}

// owned is true for admins and for the owner stored in col. Bind it with
// ownerArgs.
func owned(col string) string {
	return "(? OR " + col + " = ?)"
}

func ownerArgs(who helpers.Identity) []any {
	return []any{who.IsAdmin(), who.ID}
}
