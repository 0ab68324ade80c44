package modules

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite"
)

var indexSchema = []string{
	`CREATE TABLE IF NOT EXISTS modules (
		module      TEXT NOT NULL PRIMARY KEY,
		fingerprint TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS export_types (
		module   TEXT    NOT NULL,
		position INTEGER NOT NULL,
		name     TEXT    NOT NULL,
		arity    INTEGER NOT NULL,
		PRIMARY KEY (module, position)
	)`,
}

// Index persists export records across runs, keyed by module name and the
// fingerprint of the source they were extracted from. A module whose
// source changed misses and is re-parsed.
type Index struct {
	db *sql.DB
}

// OpenIndex opens (creating if needed) the SQLite index at path. The
// special path ":memory:" gives a private in-memory index.
func OpenIndex(path string) (*Index, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrapf(err, "creating index directory for %s", path)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening export index %s", path)
	}
	// One connection: an in-memory database is per connection, and writes
	// are serialized by the cache anyway.
	db.SetMaxOpenConns(1)
	for _, stmt := range indexSchema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, errors.Wrapf(err, "initialising export index %s", path)
		}
	}
	return &Index{db: db}, nil
}

// Lookup returns the stored record for module if it was stored with the
// same fingerprint.
func (ix *Index) Lookup(ctx context.Context, module, fingerprint string) (ExportRecord, bool, error) {
	var stored string
	err := ix.db.QueryRowContext(ctx,
		`SELECT fingerprint FROM modules WHERE module = ?`, module).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return ExportRecord{}, false, nil
	}
	if err != nil {
		return ExportRecord{}, false, errors.Wrapf(err, "looking up %s", module)
	}
	if stored != fingerprint {
		return ExportRecord{}, false, nil
	}

	rows, err := ix.db.QueryContext(ctx,
		`SELECT name, arity FROM export_types WHERE module = ? ORDER BY position`, module)
	if err != nil {
		return ExportRecord{}, false, errors.Wrapf(err, "reading exports of %s", module)
	}
	defer rows.Close()

	rec := ExportRecord{Module: module, Parsed: true}
	for rows.Next() {
		var name string
		var arity int
		if err := rows.Scan(&name, &arity); err != nil {
			return ExportRecord{}, false, errors.Wrapf(err, "scanning exports of %s", module)
		}
		rec.Types = append(rec.Types, name)
		rec.Arities = append(rec.Arities, arity)
	}
	if err := rows.Err(); err != nil {
		return ExportRecord{}, false, errors.Wrapf(err, "reading exports of %s", module)
	}
	return rec, true, nil
}

// Store replaces whatever was recorded for rec.Module.
func (ix *Index) Store(ctx context.Context, rec ExportRecord, fingerprint string) error {
	if !rec.Parsed {
		return errors.Newf("refusing to index unparsed module %s", rec.Module)
	}
	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning index transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM export_types WHERE module = ?`, rec.Module); err != nil {
		return errors.Wrapf(err, "clearing exports of %s", rec.Module)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO modules (module, fingerprint) VALUES (?, ?)`,
		rec.Module, fingerprint); err != nil {
		return errors.Wrapf(err, "storing %s", rec.Module)
	}
	for i, name := range rec.Types {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO export_types (module, position, name, arity) VALUES (?, ?, ?, ?)`,
			rec.Module, i, name, rec.Arities[i]); err != nil {
			return errors.Wrapf(err, "storing export %s.%s", rec.Module, name)
		}
	}
	return errors.Wrap(tx.Commit(), "committing index transaction")
}

// Len returns the number of indexed modules.
func (ix *Index) Len(ctx context.Context) (int, error) {
	var n int
	err := ix.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM modules`).Scan(&n)
	return n, errors.Wrap(err, "counting indexed modules")
}

func (ix *Index) Close() error {
	return ix.db.Close()
}
