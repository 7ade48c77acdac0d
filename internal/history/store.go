// Package history records console rounds in SQLite so they can be reviewed
// later. Only public data is stored: a key is identified by its fingerprint
// and modulus size, never by its exponents or factors.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned by BySession when no rounds match.
var ErrNotFound = errors.New("session not found")

// Round is one encrypt/decrypt cycle of a console session.
type Round struct {
	ID             int64
	SessionID      uuid.UUID
	CreatedAt      time.Time
	KeyFingerprint string
	ModulusBits    int
	PlainLength    int
	Ciphertext     []*big.Int
	Passed         bool
}

// Stats summarizes the store.
type Stats struct {
	Sessions int
	Rounds   int
	Failed   int
	Keys     int
}

type Store struct {
	db *sql.DB
}

const createRounds = `
CREATE TABLE IF NOT EXISTS rounds (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	key_fingerprint TEXT NOT NULL,
	modulus_bits INTEGER NOT NULL,
	plain_length INTEGER NOT NULL,
	ciphertext TEXT NOT NULL,
	passed BOOLEAN NOT NULL
);
CREATE INDEX IF NOT EXISTS rounds_session ON rounds(session_id);`

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(createRounds); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts r and returns its row id. A zero CreatedAt is set to now.
func (s *Store) Record(ctx context.Context, r Round) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (session_id, created_at, key_fingerprint, modulus_bits, plain_length, ciphertext, passed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID.String(), r.CreatedAt, r.KeyFingerprint, r.ModulusBits, r.PlainLength,
		formatCodes(r.Ciphertext), r.Passed)
	if err != nil {
		return 0, fmt.Errorf("record round: %w", err)
	}
	return res.LastInsertId()
}

// List returns the most recent rounds first. limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, limit int) ([]Round, error) {
	query := `SELECT id, session_id, created_at, key_fingerprint, modulus_bits, plain_length, ciphertext, passed
		FROM rounds ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return s.query(ctx, query, args...)
}

// BySession returns the rounds of one session in recording order.
func (s *Store) BySession(ctx context.Context, id uuid.UUID) ([]Round, error) {
	rounds, err := s.query(ctx,
		`SELECT id, session_id, created_at, key_fingerprint, modulus_bits, plain_length, ciphertext, passed
		 FROM rounds WHERE session_id = ? ORDER BY id`, id.String())
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return rounds, nil
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT session_id), COUNT(*), COALESCE(SUM(CASE WHEN passed THEN 0 ELSE 1 END), 0),
		 COUNT(DISTINCT key_fingerprint) FROM rounds`).
		Scan(&st.Sessions, &st.Rounds, &st.Failed, &st.Keys)
	if err != nil {
		return Stats{}, fmt.Errorf("history stats: %w", err)
	}
	return st, nil
}

// Clear deletes every round and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM rounds")
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Round, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var (
			r         Round
			sessionID string
			codes     string
		)
		if err := rows.Scan(&r.ID, &sessionID, &r.CreatedAt, &r.KeyFingerprint, &r.ModulusBits,
			&r.PlainLength, &codes, &r.Passed); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		if r.SessionID, err = uuid.Parse(sessionID); err != nil {
			return nil, fmt.Errorf("round %d: %w", r.ID, err)
		}
		if r.Ciphertext, err = parseCodes(codes); err != nil {
			return nil, fmt.Errorf("round %d: %w", r.ID, err)
		}
		rounds = append(rounds, r)
	}
	return rounds, rows.Err()
}

func formatCodes(codes []*big.Int) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func parseCodes(s string) ([]*big.Int, error) {
	fields := strings.Fields(s)
	codes := make([]*big.Int, 0, len(fields))
	for _, f := range fields {
		c, ok := new(big.Int).SetString(f, 10)
		if !ok {
			return nil, fmt.Errorf("malformed ciphertext code %q", f)
		}
		codes = append(codes, c)
	}
	return codes, nil
}
