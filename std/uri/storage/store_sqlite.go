package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS records (
	key BLOB PRIMARY KEY,
	uri TEXT NOT NULL,
	code INTEGER NOT NULL
)`

// Store implementation using sqlite
type SqliteStore struct {
	db *sql.DB
	tx *sql.Tx
}

// NewSqliteStore opens or creates the database file at path.
func NewSqliteStore(path string) (*SqliteStore, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store %s: %w", path, err)
	}
	if _, err = db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}
	return &SqliteStore{db: db}, nil
}

func (s *SqliteStore) String() string {
	return "sqlite-store"
}

func (s *SqliteStore) Close() error {
	if s.tx != nil {
		return ErrInTransaction
	}
	return s.db.Close()
}

func (s *SqliteStore) Get(key []string, prefix bool) (*Record, error) {
	k := encodeKey(key)

	var row *sql.Row
	if !prefix {
		row = s.db.QueryRow("SELECT uri, code FROM records WHERE key=?", k)
	} else {
		where, args := prefixWhere(k)
		row = s.db.QueryRow("SELECT uri, code FROM records"+where+" ORDER BY key DESC LIMIT 1", args...)
	}

	var rec Record
	var code int64
	switch err := row.Scan(&rec.URI, &code); err {
	case nil:
		rec.Code = uint32(code)
		return &rec, nil
	case sql.ErrNoRows:
		return nil, nil
	default:
		return nil, err
	}
}

func (s *SqliteStore) Put(key []string, rec Record) error {
	return s.exec("INSERT OR REPLACE INTO records (key, uri, code) VALUES (?, ?, ?)",
		encodeKey(key), rec.URI, int64(rec.Code))
}

func (s *SqliteStore) Remove(key []string) error {
	return s.exec("DELETE FROM records WHERE key=?", encodeKey(key))
}

func (s *SqliteStore) RemovePrefix(prefix []string) error {
	where, args := prefixWhere(encodeKey(prefix))
	return s.exec("DELETE FROM records"+where, args...)
}

func (s *SqliteStore) Walk(prefix []string, fn func(key []string, rec Record) error) error {
	where, args := prefixWhere(encodeKey(prefix))
	rows, err := s.db.Query("SELECT key, uri, code FROM records"+where+" ORDER BY key ASC", args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var raw []byte
		var rec Record
		var code int64
		if err := rows.Scan(&raw, &rec.URI, &code); err != nil {
			return err
		}
		key, err := decodeKey(raw)
		if err != nil {
			return err
		}
		rec.Code = uint32(code)
		if err := fn(key, rec); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (s *SqliteStore) Begin() (Store, error) {
	if s.tx != nil {
		return nil, ErrInTransaction
	}
	tx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return nil, err
	}
	return &SqliteStore{db: s.db, tx: tx}, nil
}

func (s *SqliteStore) Commit() error {
	if s.tx == nil {
		return ErrNoTransaction
	}
	defer func() { s.tx = nil }()
	return s.tx.Commit()
}

func (s *SqliteStore) Rollback() error {
	if s.tx == nil {
		return ErrNoTransaction
	}
	defer func() { s.tx = nil }()
	return s.tx.Rollback()
}

func (s *SqliteStore) exec(query string, args ...any) error {
	var err error
	if s.tx != nil {
		_, err = s.tx.Exec(query, args...)
	} else {
		_, err = s.db.Exec(query, args...)
	}
	return err
}

// prefixWhere matches keys starting with the encoded prefix k.
func prefixWhere(k []byte) (string, []any) {
	if len(k) == 0 {
		return "", nil
	}
	return " WHERE substr(key, 1, ?)=?", []any{len(k), k}
}
