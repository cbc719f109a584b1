package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository provides data access on top of DB.
type Repository struct {
	db *DB
}

// NewRepository creates a repository over the given database.
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// RecordChat appends one chat turn to the conversation log.
func (r *Repository) RecordChat(ctx context.Context, sessionID, userMessage, botResponse string) error {
	query := `INSERT INTO chat_history (session_id, user_message, bot_response, created_at) VALUES (?, ?, ?, ?)`
	if _, err := r.db.conn.ExecContext(ctx, query, sessionID, userMessage, botResponse, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to record chat turn: %w", err)
	}
	return nil
}

// ChatHistory returns the session's conversation in chronological order.
func (r *Repository) ChatHistory(ctx context.Context, sessionID string) ([]ChatMessage, error) {
	query := `
	SELECT id, session_id, user_message, bot_response, created_at
	FROM chat_history WHERE session_id = ? ORDER BY created_at, id`

	rows, err := r.db.conn.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat history: %w", err)
	}
	defer rows.Close()

	var messages []ChatMessage
	for rows.Next() {
		var m ChatMessage
		var createdAt int64
		if err := rows.Scan(&m.ID, &m.SessionID, &m.UserMessage, &m.BotResponse, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		m.CreatedAt = time.Unix(createdAt, 0)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// PurgeChatHistoryBefore deletes chat turns older than the cutoff and
// returns the number of deleted rows.
func (r *Repository) PurgeChatHistoryBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.conn.ExecContext(ctx, `DELETE FROM chat_history WHERE created_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to purge chat history: %w", err)
	}
	return result.RowsAffected()
}

// CreateEnrollment stores an enrollment request with pending status.
func (r *Repository) CreateEnrollment(ctx context.Context, e Enrollment) (int64, error) {
	query := `
	INSERT INTO enrollments (name, email, phone, course_id, message, status, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.conn.ExecContext(ctx, query,
		e.Name, e.Email, e.Phone, e.CourseID, e.Message, RegistrationPending, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to create enrollment: %w", err)
	}
	return result.LastInsertId()
}

// RecentEnrollments returns the most recent enrollments, newest first.
func (r *Repository) RecentEnrollments(ctx context.Context, limit int) ([]Enrollment, error) {
	query := `
	SELECT id, name, email, phone, course_id, message, status, created_at
	FROM enrollments ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := r.db.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []Enrollment
	for rows.Next() {
		var e Enrollment
		var phone, message sql.NullString
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &phone, &e.CourseID, &message, &e.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		e.Phone = phone.String
		e.Message = message.String
		e.CreatedAt = time.Unix(createdAt, 0)
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// CountEnrollments returns the total number of enrollment requests.
func (r *Repository) CountEnrollments(ctx context.Context) (int, error) {
	var count int
	err := r.db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM enrollments`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	return count, nil
}

// CountUniqueStudents counts distinct enrollment email addresses.
func (r *Repository) CountUniqueStudents(ctx context.Context) (int, error) {
	var count int
	err := r.db.conn.QueryRowContext(ctx, `SELECT COUNT(DISTINCT email) FROM enrollments`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unique students: %w", err)
	}
	return count, nil
}

// SaveContactMessage stores a contact form submission.
func (r *Repository) SaveContactMessage(ctx context.Context, m ContactMessage) (int64, error) {
	query := `INSERT INTO contact_messages (name, email, subject, message, created_at) VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.conn.ExecContext(ctx, query, m.Name, m.Email, m.Subject, m.Message, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to save contact message: %w", err)
	}
	return result.LastInsertId()
}

// ContactMessages returns contact messages, newest first. A limit of 0
// returns all messages.
func (r *Repository) ContactMessages(ctx context.Context, limit int) ([]ContactMessage, error) {
	query := `
	SELECT id, name, email, subject, message, created_at
	FROM contact_messages ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []ContactMessage
	for rows.Next() {
		var m ContactMessage
		var subject sql.NullString
		var createdAt int64
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &subject, &m.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		m.Subject = subject.String
		m.CreatedAt = time.Unix(createdAt, 0)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// CountContactMessages returns the total number of contact messages.
func (r *Repository) CountContactMessages(ctx context.Context) (int, error) {
	var count int
	err := r.db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return count, nil
}
