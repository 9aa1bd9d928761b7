package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/nutrient"
)

// Entry is one stored diagnosis. Only derived numbers and labels are
// kept, never the watched titles themselves.
type Entry struct {
	ID           int64
	RunAt        time.Time
	Diagnosis    string
	BalanceScore int
	Carbs        int
	Protein      int
	Fats         int
	Vitamins     int
	Keyword      string
}

// Scores rebuilds the percentage map from an entry's columns.
func (e Entry) Scores() nutrient.Percent {
	return nutrient.Percent{
		nutrient.Carbs:    e.Carbs,
		nutrient.Protein:  e.Protein,
		nutrient.Fats:     e.Fats,
		nutrient.Vitamins: e.Vitamins,
	}
}

type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS diagnoses (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			run_at        DATETIME NOT NULL,
			diagnosis     TEXT NOT NULL,
			balance_score INTEGER NOT NULL,
			carbs         INTEGER NOT NULL,
			protein       INTEGER NOT NULL,
			fats          INTEGER NOT NULL,
			vitamins      INTEGER NOT NULL,
			keyword       TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_diagnoses_run_at ON diagnoses(run_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// Add stores a finished diagnosis and returns its row id.
func (s *Store) Add(e Entry) (int64, error) {
	res, err := s.writeDB.Exec(`
		INSERT INTO diagnoses (run_at, diagnosis, balance_score, carbs, protein, fats, vitamins, keyword)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.RunAt, e.Diagnosis, e.BalanceScore, e.Carbs, e.Protein, e.Fats, e.Vitamins, e.Keyword)
	if err != nil {
		return 0, fmt.Errorf("inserting diagnosis: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns the latest diagnoses, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.readDB.Query(`
		SELECT id, run_at, diagnosis, balance_score, carbs, protein, fats, vitamins, keyword
		FROM diagnoses ORDER BY run_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying diagnoses: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.RunAt, &e.Diagnosis, &e.BalanceScore,
			&e.Carbs, &e.Protein, &e.Fats, &e.Vitamins, &e.Keyword); err != nil {
			return nil, fmt.Errorf("scanning diagnosis: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune drops diagnoses older than the retention window.
func (s *Store) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	res, err := s.writeDB.Exec("DELETE FROM diagnoses WHERE run_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning diagnoses: %w", err)
	}
	return res.RowsAffected()
}
