package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ragforge/docqa"
)

// Entry is one recorded question/answer exchange.
type Entry struct {
	ID        string
	SessionID string
	Question  string
	Answer    string
	Sources   []SourceRef
	CreatedAt time.Time
}

// SourceRef points at a chunk that grounded an answer.
type SourceRef struct {
	DocumentID string  `json:"document_id"`
	Pos        int     `json:"pos"`
	Score      float64 `json:"score"`
}

// Store persists QA history in SQLite.
type Store struct {
	db        *sql.DB
	tableName string
}

// Options configures the SQLite connection.
type Options struct {
	Path      string
	TableName string // Default "qa_history"
}

// NewStore opens (or creates) the database and ensures the schema.
func NewStore(opts Options) (*Store, error) {
	db, err := sql.Open("sqlite3", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	tableName := opts.TableName
	if tableName == "" {
		tableName = "qa_history"
	}

	store := &Store{db: db, tableName: tableName}
	if err := store.initSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			sources TEXT,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_%s_session_id ON %s (session_id);
	`, s.tableName, s.tableName, s.tableName)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores an exchange and returns the saved entry.
func (s *Store) Record(ctx context.Context, sessionID, question string, ans docqa.Answer) (Entry, error) {
	refs := make([]SourceRef, len(ans.Sources))
	for i, sc := range ans.Sources {
		refs[i] = SourceRef{
			DocumentID: sc.Chunk.DocumentID,
			Pos:        sc.Chunk.Pos,
			Score:      sc.Score,
		}
	}

	sourcesJSON, err := json.Marshal(refs)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to marshal sources: %w", err)
	}

	entry := Entry{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Question:  question,
		Answer:    ans.Text,
		Sources:   refs,
		CreatedAt: time.Now().UTC(),
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, session_id, question, answer, sources, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, s.tableName)

	_, err = s.db.ExecContext(ctx, query,
		entry.ID,
		entry.SessionID,
		entry.Question,
		entry.Answer,
		string(sourcesJSON),
		entry.CreatedAt,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to record exchange: %w", err)
	}
	return entry, nil
}

// History returns a session's exchanges in chronological order.
func (s *Store) History(ctx context.Context, sessionID string) ([]Entry, error) {
	query := fmt.Sprintf(`
		SELECT id, session_id, question, answer, sources, created_at
		FROM %s
		WHERE session_id = ?
		ORDER BY created_at ASC
	`, s.tableName)

	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var sourcesJSON string

		err := rows.Scan(
			&entry.ID,
			&entry.SessionID,
			&entry.Question,
			&entry.Answer,
			&sourcesJSON,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}

		if sourcesJSON != "" {
			if err := json.Unmarshal([]byte(sourcesJSON), &entry.Sources); err != nil {
				return nil, fmt.Errorf("failed to unmarshal sources: %w", err)
			}
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}
	return entries, nil
}

// Clear removes a session's history.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE session_id = ?", s.tableName)
	if _, err := s.db.ExecContext(ctx, query, sessionID); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
