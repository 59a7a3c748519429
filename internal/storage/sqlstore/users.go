package sqlstore

import (
	"context"
	"time"

	"github.com/mmynk/splitledger/internal/models"
)

const userColumns = `id, name, email, password_hash, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	return user, err
}

// CreateUser inserts a new user into the database.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().Unix()
	}

	id, err := s.insert(ctx, s.db,
		`INSERT INTO users (name, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		user.Name, models.NormalizeEmail(user.Email), user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		return wrapErr(err, "failed to create user %q", user.Name)
	}

	user.ID = id
	user.Email = models.NormalizeEmail(user.Email)
	return nil
}

// GetUserByID retrieves a user by their ID.
func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(s.queryRow(ctx, s.db,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return nil, wrapErr(err, "user %d", id)
	}
	return user, nil
}

// GetUserByName retrieves a user by their unique name.
func (s *Store) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	user, err := scanUser(s.queryRow(ctx, s.db,
		`SELECT `+userColumns+` FROM users WHERE name = ?`, name))
	if err != nil {
		return nil, wrapErr(err, "user %q", name)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = models.NormalizeEmail(email)
	user, err := scanUser(s.queryRow(ctx, s.db,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if err != nil {
		return nil, wrapErr(err, "user with email %q", email)
	}
	return user, nil
}

// GetUsersByIDs retrieves multiple users by their IDs.
// Users that don't exist are omitted from the result.
func (s *Store) GetUsersByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error) {
	users := make(map[int64]*models.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	rows, err := s.query(ctx, s.db,
		`SELECT `+userColumns+` FROM users WHERE id IN (`+placeholders(len(ids))+`)`,
		int64Args(ids)...,
	)
	if err != nil {
		return nil, wrapErr(err, "failed to get users by IDs")
	}
	defer rows.Close()

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, wrapErr(err, "failed to scan user")
		}
		users[user.ID] = user
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err, "error iterating users")
	}

	return users, nil
}
