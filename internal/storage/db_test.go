package storage

import (
	"path/filepath"
	"testing"
)

func TestNew_CreatesSchemaOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "institute.db")

	db, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	if db.Path() != path {
		t.Errorf("Path() = %q, want %q", db.Path(), path)
	}

	tables := []string{
		"chat_history", "enrollments", "contact_messages",
		"projects", "staff", "staff_activity", "event_registrations",
	}
	for _, table := range tables {
		var count int
		err := db.Conn().QueryRow(
			`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&count)
		if err != nil {
			t.Fatalf("query sqlite_master: %v", err)
		}
		if count != 1 {
			t.Errorf("table %s not created", table)
		}
	}
}

func TestNewTestDB(t *testing.T) {
	db, err := NewTestDB()
	if err != nil {
		t.Fatalf("NewTestDB: %v", err)
	}
	defer db.Close()

	if _, err := db.Conn().Exec(`INSERT INTO chat_history (session_id, user_message, bot_response, created_at) VALUES ('s', 'u', 'b', 0)`); err != nil {
		t.Fatalf("insert into in-memory db: %v", err)
	}
}
