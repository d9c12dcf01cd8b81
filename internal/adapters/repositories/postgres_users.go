package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"address-distance-service/internal/domain"
)

// PostgreSQL backed store of API consumer profiles.
type PostgresUsers struct {
	DB *sql.DB
}

func NewPostgresUsers(db *sql.DB) *PostgresUsers {
	return &PostgresUsers{DB: db}
}

// Insert a new user.
func (p *PostgresUsers) Create(ctx context.Context, u domain.User) error {
	prefs, err := marshalPreferences(u.Preferences)
	if err != nil {
		return fmt.Errorf("create user %s: %w", u.ID, err)
	}

	_, err = p.DB.ExecContext(ctx, `
	INSERT INTO users (
		id,
		name,
		email,
		preferences
	)
	VALUES ($1, $2, $3, $4);
	`, u.ID, u.Name, u.Email, prefs)
	if err != nil {
		return fmt.Errorf("create user %s: %w", u.ID, err)
	}
	return nil
}

// Fetch one user by id.
func (p *PostgresUsers) Get(ctx context.Context, id string) (domain.User, error) {
	row := p.DB.QueryRowContext(ctx, `
	SELECT
		id,
		name,
		email,
		preferences
	FROM users
	WHERE id = $1;
	`, id)

	return scanUser(row, id)
}

// Replace the stored profile.
func (p *PostgresUsers) Update(ctx context.Context, u domain.User) error {
	prefs, err := marshalPreferences(u.Preferences)
	if err != nil {
		return fmt.Errorf("update user %s: %w", u.ID, err)
	}

	res, err := p.DB.ExecContext(ctx, `
	UPDATE users
	SET name = $1, email = $2, preferences = $3
	WHERE id = $4;
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
func (p *PostgresUsers) Delete(ctx context.Context, id string) error {
	res, err := p.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return checkDeleted(res, "user", id)
}

// Report whether email belongs to any user other than excludeUserID.
func (p *PostgresUsers) EmailInUse(ctx context.Context, email, excludeUserID string) (bool, error) {
	var count int
	err := p.DB.QueryRowContext(ctx, `
	SELECT COUNT(1)
	FROM users
	WHERE email = $1 AND id <> $2;
	`, email, excludeUserID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check email %q: %w", email, err)
	}
	return count > 0, nil
}
