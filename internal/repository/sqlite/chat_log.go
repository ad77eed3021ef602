package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/AB-bunny178/mindease-chatbot/backend/internal/model/chat"
)

const createChatsTableSQL = `
CREATE TABLE IF NOT EXISTS chats (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	role TEXT,
	message TEXT,
	mood REAL,
	timestamp TEXT
);`

// DefaultRecentLimit caps history reads when the caller does not supply a limit.
const DefaultRecentLimit = 50

// ChatLog persists conversation turns in a single SQLite file. It keeps no
// open handle: every operation opens the database and closes it before
// returning, relying on SQLite's own locking for concurrent writes.
type ChatLog struct {
	path string
}

// NewChatLog creates a chat log backed by the SQLite file at path. The file
// and schema are not touched until Initialize is called.
func NewChatLog(path string) *ChatLog {
	return &ChatLog{path: path}
}

func (l *ChatLog) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chat log %q: %w", l.path, err)
	}
	return db, nil
}

// Initialize ensures the chats table exists. Safe to call repeatedly.
func (l *ChatLog) Initialize(ctx context.Context) error {
	db, err := l.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, createChatsTableSQL); err != nil {
		return fmt.Errorf("failed to create chats table: %w", err)
	}
	return nil
}

// Append inserts one turn with the current UTC timestamp. The schema must
// already exist; Append never creates it implicitly.
func (l *ChatLog) Append(ctx context.Context, role, message string, mood int) error {
	db, err := l.open()
	if err != nil {
		return err
	}
	defer db.Close()

	timestamp := time.Now().UTC().Format(time.RFC3339)
	_, err = db.ExecContext(ctx,
		`INSERT INTO chats (role, message, mood, timestamp) VALUES (?, ?, ?, ?)`,
		role, message, mood, timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append %s turn: %w", role, err)
	}
	return nil
}

// Recent returns the newest entries first, at most limit of them. A
// non-positive limit falls back to DefaultRecentLimit.
func (l *ChatLog) Recent(ctx context.Context, limit int) ([]chat.Entry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	db, err := l.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT id, role, message, mood, timestamp FROM chats ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat log: %w", err)
	}
	defer rows.Close()

	entries := make([]chat.Entry, 0, limit)
	for rows.Next() {
		var entry chat.Entry
		var mood sql.NullFloat64
		if err := rows.Scan(&entry.ID, &entry.Role, &entry.Message, &mood, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan chat entry: %w", err)
		}
		if mood.Valid {
			val := mood.Float64
			entry.Mood = &val
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chat log rows: %w", err)
	}
	return entries, nil
}
