package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/itech-institute/itech-site-go/internal/errors"
)

// CreateStaff registers a staff account. Returns ErrDuplicate when the
// username is taken.
func (r *Repository) CreateStaff(ctx context.Context, username, name, role, password, email string) (int64, error) {
	var count int
	err := r.db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM staff WHERE username = ?`, username).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to check staff username: %w", err)
	}
	if count > 0 {
		return 0, apperrors.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash staff password: %w", err)
	}

	query := `INSERT INTO staff (username, name, role, password_hash, email, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	result, err := r.db.conn.ExecContext(ctx, query, username, name, role, string(hash), email, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to create staff: %w", err)
	}
	return result.LastInsertId()
}

// AuthenticateStaff verifies credentials for an active staff account and
// updates its last login time. Returns ErrUnauthorized when the account
// is unknown, inactive, or the password does not match.
func (r *Repository) AuthenticateStaff(ctx context.Context, username, password string) (Staff, error) {
	query := `
	SELECT id, username, name, role, password_hash, email, created_at, last_login, is_active
	FROM staff WHERE username = ? AND is_active = 1`

	var s Staff
	var passwordHash string
	var email sql.NullString
	var createdAt int64
	var lastLogin sql.NullInt64
	err := r.db.conn.QueryRowContext(ctx, query, username).Scan(
		&s.ID, &s.Username, &s.Name, &s.Role, &passwordHash, &email, &createdAt, &lastLogin, &s.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return Staff{}, apperrors.ErrUnauthorized
	}
	if err != nil {
		return Staff{}, fmt.Errorf("failed to load staff account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return Staff{}, apperrors.ErrUnauthorized
	}

	now := time.Now()
	if _, err := r.db.conn.ExecContext(ctx, `UPDATE staff SET last_login = ? WHERE id = ?`, now.Unix(), s.ID); err != nil {
		return Staff{}, fmt.Errorf("failed to update last login: %w", err)
	}

	s.Email = email.String
	s.CreatedAt = time.Unix(createdAt, 0)
	s.LastLogin = &now
	return s, nil
}

// StaffByID returns a staff account or ErrNotFound.
func (r *Repository) StaffByID(ctx context.Context, id int64) (Staff, error) {
	query := `
	SELECT id, username, name, role, email, created_at, last_login, is_active
	FROM staff WHERE id = ?`

	var s Staff
	var email sql.NullString
	var createdAt int64
	var lastLogin sql.NullInt64
	err := r.db.conn.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Username, &s.Name, &s.Role, &email, &createdAt, &lastLogin, &s.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return Staff{}, apperrors.ErrNotFound
	}
	if err != nil {
		return Staff{}, fmt.Errorf("failed to load staff account: %w", err)
	}

	s.Email = email.String
	s.CreatedAt = time.Unix(createdAt, 0)
	if lastLogin.Valid {
		t := time.Unix(lastLogin.Int64, 0)
		s.LastLogin = &t
	}
	return s, nil
}

// LogStaffActivity appends an entry to the staff audit log.
func (r *Repository) LogStaffActivity(ctx context.Context, staffID int64, activityType, description string) error {
	query := `INSERT INTO staff_activity (staff_id, activity_type, description, created_at) VALUES (?, ?, ?, ?)`
	if _, err := r.db.conn.ExecContext(ctx, query, staffID, activityType, description, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to log staff activity: %w", err)
	}
	return nil
}

// RecentStaffActivity returns the latest audit log entries.
func (r *Repository) RecentStaffActivity(ctx context.Context, limit int) ([]StaffActivity, error) {
	query := `
	SELECT id, staff_id, activity_type, description, created_at
	FROM staff_activity ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := r.db.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff activity: %w", err)
	}
	defer rows.Close()

	var activities []StaffActivity
	for rows.Next() {
		var a StaffActivity
		var description sql.NullString
		var createdAt int64
		if err := rows.Scan(&a.ID, &a.StaffID, &a.ActivityType, &description, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan staff activity: %w", err)
		}
		a.Description = description.String
		a.CreatedAt = time.Unix(createdAt, 0)
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
