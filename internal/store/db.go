package store

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"go-etl-designer/internal/model"
)

// MemoryDSN keeps the download history in a shared in-memory database that
// vanishes with the process
const MemoryDSN = "file:etl-designer?mode=memory&cache=shared"

// Store records generated-script downloads
type Store struct {
	db *sql.DB
}

// Open connects to dsn and creates tables if not exists
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %s", dsn)
	}
	// one connection keeps a memory database alive and writes serialised
	db.SetMaxOpenConns(1)

	downloadTable := `
	CREATE TABLE IF NOT EXISTS script_downloads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT,
		source TEXT,
		step_count INTEGER,
		script TEXT,
		created_at DATETIME
	);
	`
	if _, err := db.Exec(downloadTable); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create script_downloads table")
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveScript stores one generated script for a session
func (s *Store) SaveScript(sessionID, source string, stepCount int, script string) (model.ScriptRecord, error) {
	now := time.Now().UTC()
	res, err := s.db.Exec(`INSERT INTO script_downloads (session_id, source, step_count, script, created_at) VALUES (?, ?, ?, ?, ?)`,
		sessionID, source, stepCount, script, now)
	if err != nil {
		return model.ScriptRecord{}, errors.Wrap(err, "insert script download")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.ScriptRecord{}, errors.Wrap(err, "read script download id")
	}

	return model.ScriptRecord{
		ID:        id,
		SessionID: sessionID,
		Source:    source,
		StepCount: stepCount,
		Script:    script,
		CreatedAt: now,
	}, nil
}

// ListScripts returns a session's downloads, oldest first
func (s *Store) ListScripts(sessionID string) ([]model.ScriptRecord, error) {
	rows, err := s.db.Query(`SELECT id, session_id, source, step_count, script, created_at FROM script_downloads WHERE session_id = ? ORDER BY id ASC`, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "query script downloads")
	}
	defer rows.Close()

	records := []model.ScriptRecord{}
	for rows.Next() {
		var rec model.ScriptRecord
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Source, &rec.StepCount, &rec.Script, &rec.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan script download")
		}
		records = append(records, rec)
	}
	return records, errors.Wrap(rows.Err(), "iterate script downloads")
}

// DeleteSession drops every download of a session
func (s *Store) DeleteSession(sessionID string) error {
	_, err := s.db.Exec(`DELETE FROM script_downloads WHERE session_id = ?`, sessionID)
	return errors.Wrap(err, "delete script downloads")
}
