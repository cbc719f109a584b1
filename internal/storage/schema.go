package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// InitSchema creates all necessary tables and indexes.
// Note: WAL mode and pragmas are configured in db.go.
func InitSchema(db *sql.DB) error {
	if err := createChatHistoryTable(db); err != nil {
		return err
	}

	if err := createEnrollmentsTable(db); err != nil {
		return err
	}

	if err := createContactMessagesTable(db); err != nil {
		return err
	}

	if err := createProjectsTable(db); err != nil {
		return err
	}

	if err := createStaffTables(db); err != nil {
		return err
	}

	return createEventRegistrationsTable(db)
}

func createChatHistoryTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS chat_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		user_message TEXT NOT NULL,
		bot_response TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_chat_history_session ON chat_history(session_id);
	CREATE INDEX IF NOT EXISTS idx_chat_history_created_at ON chat_history(created_at);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create chat_history table: %w", err)
	}

	return nil
}

func createEnrollmentsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS enrollments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		course_id INTEGER NOT NULL,
		message TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_enrollments_course ON enrollments(course_id);
	CREATE INDEX IF NOT EXISTS idx_enrollments_email ON enrollments(email);
	CREATE INDEX IF NOT EXISTS idx_enrollments_created_at ON enrollments(created_at);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create enrollments table: %w", err)
	}

	return nil
}

func createContactMessagesTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS contact_messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT,
		message TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at ON contact_messages(created_at);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create contact_messages table: %w", err)
	}

	return nil
}

func createProjectsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_name TEXT NOT NULL,
		course TEXT NOT NULL,
		title TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL,
		url TEXT,
		views INTEGER NOT NULL DEFAULT 0,
		likes INTEGER NOT NULL DEFAULT 0,
		shares INTEGER NOT NULL DEFAULT 0,
		password_hash TEXT,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_projects_student ON projects(student_name);
	CREATE INDEX IF NOT EXISTS idx_projects_category ON projects(category);
	CREATE INDEX IF NOT EXISTS idx_projects_created_at ON projects(created_at);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create projects table: %w", err)
	}

	return nil
}

func createStaffTables(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS staff (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		email TEXT,
		created_at INTEGER NOT NULL,
		last_login INTEGER,
		is_active INTEGER NOT NULL DEFAULT 1
	);
	CREATE TABLE IF NOT EXISTS staff_activity (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		staff_id INTEGER NOT NULL,
		activity_type TEXT NOT NULL,
		description TEXT,
		created_at INTEGER NOT NULL,
		FOREIGN KEY (staff_id) REFERENCES staff(id)
	);
	CREATE INDEX IF NOT EXISTS idx_staff_activity_staff ON staff_activity(staff_id);
	CREATE INDEX IF NOT EXISTS idx_staff_activity_created_at ON staff_activity(created_at);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create staff tables: %w", err)
	}

	return nil
}

func createEventRegistrationsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS event_registrations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_name TEXT NOT NULL,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		experience_level TEXT,
		special_requirements TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		registered_at INTEGER NOT NULL,
		action_by_staff_id INTEGER REFERENCES staff(id),
		action_at INTEGER,
		UNIQUE (event_name, email)
	);
	CREATE INDEX IF NOT EXISTS idx_event_registrations_event ON event_registrations(event_name);
	CREATE INDEX IF NOT EXISTS idx_event_registrations_status ON event_registrations(status);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create event_registrations table: %w", err)
	}

	return nil
}
