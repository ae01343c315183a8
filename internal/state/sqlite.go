package state

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS records (
	key   TEXT    NOT NULL,
	seq   INTEGER NOT NULL,
	value TEXT    NOT NULL,
	PRIMARY KEY (key, seq)
);
`

// SQLiteStore keeps all keys in one SQLite database.
type SQLiteStore struct {
	conn *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (or creates) the database at path and applies the schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	conn.SetMaxOpenConns(1)
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{conn: conn}, nil
}

func (s *SQLiteStore) Read(key Key) ([]string, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	rows, err := s.conn.Query(`SELECT value FROM records WHERE key = ? ORDER BY seq`, string(key))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", key, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Append(key Key, records ...string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := checkRecords(records); err != nil {
		return err
	}
	return s.inTx(func(tx *sql.Tx) error {
		var next int64
		if err := tx.QueryRow(`SELECT COALESCE(MAX(seq) + 1, 0) FROM records WHERE key = ?`, string(key)).Scan(&next); err != nil {
			return fmt.Errorf("next seq for %s: %w", key, err)
		}
		return insert(tx, key, next, records)
	})
}

func (s *SQLiteStore) Overwrite(key Key, records []string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := checkRecords(records); err != nil {
		return err
	}
	return s.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM records WHERE key = ?`, string(key)); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
		return insert(tx, key, 0, records)
	})
}

func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

func (s *SQLiteStore) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func insert(tx *sql.Tx, key Key, start int64, records []string) error {
	if len(records) == 0 {
		return nil
	}
	stmt, err := tx.Prepare(`INSERT INTO records (key, seq, value) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.Exec(string(key), start+int64(i), r); err != nil {
			return fmt.Errorf("insert %s[%d]: %w", key, start+int64(i), err)
		}
	}
	return nil
}
