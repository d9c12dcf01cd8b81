package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"address-distance-service/internal/domain"
)

// SQLite backed store of API consumer profiles. Preferences are stored as a
// JSON text column.
type SqliteUsers struct {
	DB *sql.DB
}

func NewSqliteUsers(db *sql.DB) *SqliteUsers {
	return &SqliteUsers{DB: db}
}

// Insert a new user.
func (s *SqliteUsers) Create(ctx context.Context, u domain.User) error {
	prefs, err := marshalPreferences(u.Preferences)
	if err != nil {
		return fmt.Errorf("create user %s: %w", u.ID, err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO users (
		id,
		name,
		email,
		preferences
	)
	VALUES (?, ?, ?, ?);
	`, u.ID, u.Name, u.Email, prefs)
	if err != nil {
		return fmt.Errorf("create user %s: %w", u.ID, err)
	}
	return nil
}

// Fetch one user by id.
func (s *SqliteUsers) Get(ctx context.Context, id string) (domain.User, error) {
	row := s.DB.QueryRowContext(ctx, `
	SELECT
		id,
		name,
		email,
		preferences
	FROM users
	WHERE id = ?;
	`, id)

	return scanUser(row, id)
}

// Replace the stored profile.
func (s *SqliteUsers) Update(ctx context.Context, u domain.User) error {
	prefs, err := marshalPreferences(u.Preferences)
	if err != nil {
		return fmt.Errorf("update user %s: %w", u.ID, err)
	}

	res, err := s.DB.ExecContext(ctx, `
	UPDATE users
	SET name = ?, email = ?, preferences = ?
	WHERE id = ?;
	`, u.Name, u.Email, prefs, u.ID)
	if err != nil {
		return fmt.Errorf("update user %s: %w", u.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user %s: rows affected: %w", u.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", u.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete one user by id.
func (s *SqliteUsers) Delete(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return checkDeleted(res, "user", id)
}

// Report whether email belongs to any user other than excludeUserID.
func (s *SqliteUsers) EmailInUse(ctx context.Context, email, excludeUserID string) (bool, error) {
	var count int
	err := s.DB.QueryRowContext(ctx, `
	SELECT COUNT(1)
	FROM users
	WHERE email = ? AND id <> ?;
	`, email, excludeUserID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check email %q: %w", email, err)
	}
	return count > 0, nil
}

func marshalPreferences(prefs map[string]any) (string, error) {
	if prefs == nil {
		return "{}", nil
	}
	b, err := json.Marshal(prefs)
	if err != nil {
		return "", fmt.Errorf("encode preferences: %w", err)
	}
	return string(b), nil
}

func scanUser(row *sql.Row, id string) (domain.User, error) {
	var u domain.User
	var prefs string

	err := row.Scan(&u.ID, &u.Name, &u.Email, &prefs)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("get user %s: scan row: %w", id, err)
	}

	if err := json.Unmarshal([]byte(prefs), &u.Preferences); err != nil {
		return domain.User{}, fmt.Errorf("get user %s: decode preferences: %w", id, err)
	}
	return u, nil
}
