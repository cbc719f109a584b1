package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	apperrors "github.com/itech-institute/itech-site-go/internal/errors"
)

// CreateEventRegistration stores an event registration with pending
// status. Returns ErrDuplicate when the email is already registered for
// the event.
func (r *Repository) CreateEventRegistration(ctx context.Context, reg EventRegistration) (int64, error) {
	var count int
	err := r.db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_registrations WHERE event_name = ? AND email = ?`,
		reg.EventName, reg.Email).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing registration: %w", err)
	}
	if count > 0 {
		return 0, apperrors.ErrDuplicate
	}

	query := `
	INSERT INTO event_registrations
	(event_name, full_name, email, phone, experience_level, special_requirements, status, registered_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.conn.ExecContext(ctx, query,
		reg.EventName, reg.FullName, reg.Email, reg.Phone,
		reg.ExperienceLevel, reg.SpecialRequirements, RegistrationPending, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to create event registration: %w", err)
	}
	return result.LastInsertId()
}

// EventRegistrations returns registrations with the acting staff name
// joined in, newest first. A limit of 0 returns all registrations.
func (r *Repository) EventRegistrations(ctx context.Context, limit int) ([]EventRegistration, error) {
	query := `
	SELECT er.id, er.event_name, er.full_name, er.email, er.phone,
	       er.experience_level, er.special_requirements, er.status,
	       er.registered_at, er.action_by_staff_id, er.action_at,
	       COALESCE(s.name, '') AS staff_name
	FROM event_registrations er
	LEFT JOIN staff s ON er.action_by_staff_id = s.id
	ORDER BY er.registered_at DESC, er.id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query event registrations: %w", err)
	}
	defer rows.Close()

	var registrations []EventRegistration
	for rows.Next() {
		var reg EventRegistration
		var experience, requirements sql.NullString
		var registeredAt int64
		var actionBy sql.NullInt64
		var actionAt sql.NullInt64
		if err := rows.Scan(&reg.ID, &reg.EventName, &reg.FullName, &reg.Email, &reg.Phone,
			&experience, &requirements, &reg.Status, &registeredAt, &actionBy, &actionAt, &reg.StaffName); err != nil {
			return nil, fmt.Errorf("failed to scan event registration: %w", err)
		}
		reg.ExperienceLevel = experience.String
		reg.SpecialRequirements = requirements.String
		reg.RegisteredAt = time.Unix(registeredAt, 0)
		if actionBy.Valid {
			reg.ActionByStaffID = &actionBy.Int64
		}
		if actionAt.Valid {
			t := time.Unix(actionAt.Int64, 0)
			reg.ActionAt = &t
		}
		registrations = append(registrations, reg)
	}
	return registrations, rows.Err()
}

// UpdateEventRegistrationStatus moves a registration through the
// approval workflow, recording which staff member acted and when.
func (r *Repository) UpdateEventRegistrationStatus(ctx context.Context, id int64, status string, staffID int64) error {
	if status != RegistrationApproved && status != RegistrationRejected && status != RegistrationPending {
		return apperrors.NewValidationError("status", "must be pending, approved, or rejected")
	}

	result, err := r.db.conn.ExecContext(ctx,
		`UPDATE event_registrations SET status = ?, action_by_staff_id = ?, action_at = ? WHERE id = ?`,
		status, staffID, time.Now().Unix(), id)
	if err != nil {
		return fmt.Errorf("failed to update registration status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// EventRegistrationStats returns totals for the staff dashboard.
func (r *Repository) EventRegistrationStats(ctx context.Context) (RegistrationStats, error) {
	var stats RegistrationStats
	err := r.db.conn.QueryRowContext(ctx, `
	SELECT COUNT(*), COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
	FROM event_registrations`, RegistrationPending).Scan(&stats.Total, &stats.Pending)
	if err != nil {
		return RegistrationStats{}, fmt.Errorf("failed to count event registrations: %w", err)
	}
	return stats, nil
}

// ClearEventRegistrations deletes all registrations. Manual staff
// operation only.
func (r *Repository) ClearEventRegistrations(ctx context.Context) (int64, error) {
	result, err := r.db.conn.ExecContext(ctx, `DELETE FROM event_registrations`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear event registrations: %w", err)
	}
	return result.RowsAffected()
}
