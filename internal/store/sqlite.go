package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"github.com/arlopurcell/ledgy/internal/model"
)

type Store struct {
	db *sql.DB
}

func NewStore(dbPath string, migrationsFS fs.FS) (*Store, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("can not open database : %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("can not connect with database : %w", err)
	}
	if err := runMigrations(db, migrationsFS); err != nil {
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}

// ReplaceSnapshot swaps the cached snapshot for an account in one
// transaction, so readers never observe a half-applied refresh.
func (s *Store) ReplaceSnapshot(account string, snap *model.LedgerSnapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction : %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM snapshots WHERE account = ?", account); err != nil {
		return fmt.Errorf("failed to clear snapshot : %w", err)
	}
	if _, err := tx.Exec("DELETE FROM entries WHERE account = ?", account); err != nil {
		return fmt.Errorf("failed to clear entries : %w", err)
	}

	if _, err := tx.Exec(
		"INSERT INTO snapshots (account, balance) VALUES (?, ?)",
		account, snap.Balance,
	); err != nil {
		return fmt.Errorf("failed to insert snapshot : %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO entries (account, remote_rowid, kind, amount, description, position)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare entry SQL : %w", err)
	}
	defer stmt.Close()

	for i, t := range snap.Credits {
		if _, err := stmt.Exec(account, t.RowID, string(model.KindCredit), t.Amount, t.Description, i); err != nil {
			return fmt.Errorf("failed to insert credit entry : %w", err)
		}
	}
	for i, t := range snap.Debits {
		if _, err := stmt.Exec(account, t.RowID, string(model.KindDebit), t.Amount, t.Description, i); err != nil {
			return fmt.Errorf("failed to insert debit entry : %w", err)
		}
	}

	return tx.Commit()
}

func (s *Store) GetSnapshot(account string) (*model.LedgerSnapshot, error) {
	snap := &model.LedgerSnapshot{}

	err := s.db.QueryRow(
		"SELECT balance FROM snapshots WHERE account = ?", account,
	).Scan(&snap.Balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT remote_rowid, kind, amount, description
		FROM entries
		WHERE account = ?
		ORDER BY position
	`, account)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t model.Transaction
		var kind string
		if err := rows.Scan(&t.RowID, &kind, &t.Amount, &t.Description); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		if kind == string(model.KindCredit) {
			snap.Credits = append(snap.Credits, t)
		} else {
			snap.Debits = append(snap.Debits, t)
		}
	}

	return snap, rows.Err()
}

// ReplaceCrons swaps the cached cron list for an account wholesale. The
// schedule is flattened to the same (type, index) pair the server stores.
func (s *Store) ReplaceCrons(account string, crons []model.Cron) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction : %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM crons WHERE account = ?", account); err != nil {
		return fmt.Errorf("failed to clear crons : %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO crons (account, remote_rowid, type, idx, amount, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare cron SQL : %w", err)
	}
	defer stmt.Close()

	for _, cron := range crons {
		kind, idx, err := cron.Spec.Schedule.ToSQL()
		if err != nil {
			return fmt.Errorf("failed to store cron %d: %w", cron.RowID, err)
		}
		if _, err := stmt.Exec(account, cron.RowID, kind, idx, cron.Spec.Amount, cron.Spec.Description); err != nil {
			return fmt.Errorf("failed to insert cron : %w", err)
		}
	}

	return tx.Commit()
}

func (s *Store) GetCrons(account string) ([]model.Cron, error) {
	rows, err := s.db.Query(`
		SELECT remote_rowid, type, idx, amount, description
		FROM crons
		WHERE account = ?
		ORDER BY remote_rowid
	`, account)
	if err != nil {
		return nil, fmt.Errorf("failed to query crons: %w", err)
	}
	defer rows.Close()

	var crons []model.Cron
	for rows.Next() {
		var cron model.Cron
		var kind string
		var idx int
		if err := rows.Scan(&cron.RowID, &kind, &idx, &cron.Spec.Amount, &cron.Spec.Description); err != nil {
			return nil, fmt.Errorf("failed to scan cron: %w", err)
		}
		cron.Spec.Schedule, err = model.ScheduleFromSQL(kind, idx)
		if err != nil {
			return nil, fmt.Errorf("corrupt cron row %d: %w", cron.RowID, err)
		}
		crons = append(crons, cron)
	}

	return crons, rows.Err()
}
