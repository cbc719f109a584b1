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

// CreateProject stores a student project. A non-empty password enables
// delete protection; only its bcrypt hash is stored.
func (r *Repository) CreateProject(ctx context.Context, p Project, password string) (int64, error) {
	var passwordHash sql.NullString
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return 0, fmt.Errorf("failed to hash project password: %w", err)
		}
		passwordHash = sql.NullString{String: string(hash), Valid: true}
	}

	query := `
	INSERT INTO projects (student_name, course, title, category, description, url, password_hash, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.conn.ExecContext(ctx, query,
		p.StudentName, p.Course, p.Title, p.Category, p.Description, p.URL, passwordHash, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to create project: %w", err)
	}
	return result.LastInsertId()
}

// Projects returns projects, newest first, optionally filtered by category.
func (r *Repository) Projects(ctx context.Context, category string) ([]Project, error) {
	query := `
	SELECT id, student_name, course, title, category, description, url,
	       views, likes, shares, password_hash IS NOT NULL, created_at
	FROM projects`
	args := []any{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ProjectByID returns a single project or ErrNotFound.
func (r *Repository) ProjectByID(ctx context.Context, id int64) (Project, error) {
	query := `
	SELECT id, student_name, course, title, category, description, url,
	       views, likes, shares, password_hash IS NOT NULL, created_at
	FROM projects WHERE id = ?`

	row := r.db.conn.QueryRowContext(ctx, query, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Project{}, apperrors.ErrNotFound
	}
	return p, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (Project, error) {
	var p Project
	var url sql.NullString
	var createdAt int64
	err := row.Scan(&p.ID, &p.StudentName, &p.Course, &p.Title, &p.Category, &p.Description,
		&url, &p.Views, &p.Likes, &p.Shares, &p.Protected, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Project{}, err
	}
	if err != nil {
		return Project{}, fmt.Errorf("failed to scan project: %w", err)
	}
	p.URL = url.String
	p.CreatedAt = time.Unix(createdAt, 0)
	return p, nil
}

// IncrementProjectViews bumps the project's view counter.
func (r *Repository) IncrementProjectViews(ctx context.Context, id int64) error {
	return r.incrementProjectCounter(ctx, "views", id)
}

// IncrementProjectLikes bumps the project's like counter.
func (r *Repository) IncrementProjectLikes(ctx context.Context, id int64) error {
	return r.incrementProjectCounter(ctx, "likes", id)
}

// IncrementProjectShares bumps the project's share counter.
func (r *Repository) IncrementProjectShares(ctx context.Context, id int64) error {
	return r.incrementProjectCounter(ctx, "shares", id)
}

func (r *Repository) incrementProjectCounter(ctx context.Context, column string, id int64) error {
	query := fmt.Sprintf(`UPDATE projects SET %s = %s + 1 WHERE id = ?`, column, column)
	result, err := r.db.conn.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment project %s: %w", column, err)
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

// DeleteProject removes a project after verifying its delete password.
// Projects without a password are deletable by anyone; a wrong password
// returns ErrWrongPassword.
func (r *Repository) DeleteProject(ctx context.Context, id int64, password string) error {
	var passwordHash sql.NullString
	err := r.db.conn.QueryRowContext(ctx, `SELECT password_hash FROM projects WHERE id = ?`, id).Scan(&passwordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load project password: %w", err)
	}

	if passwordHash.Valid {
		if err := bcrypt.CompareHashAndPassword([]byte(passwordHash.String), []byte(password)); err != nil {
			return apperrors.ErrWrongPassword
		}
	}

	if _, err := r.db.conn.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// CountProjects returns the total number of projects.
func (r *Repository) CountProjects(ctx context.Context) (int, error) {
	var count int
	err := r.db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}

// RecentProjects returns the most recently uploaded projects.
func (r *Repository) RecentProjects(ctx context.Context, limit int) ([]Project, error) {
	query := `
	SELECT id, student_name, course, title, category, description, url,
	       views, likes, shares, password_hash IS NOT NULL, created_at
	FROM projects ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := r.db.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
