package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"clinikit/internal/domain/user"

	"golang.org/x/exp/slog"
)

func NewUserRepository(storage *Storage, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  storage.DB(),
		log: log,
	}
}

type UserRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func (r *UserRepository) Find(ctx context.Context, username string) (user.User, error) {
	var u user.User
	var permissions string

	err := r.db.QueryRowContext(ctx,
		`SELECT username, password, permissions FROM users WHERE username = ?`,
		username).Scan(&u.Username, &u.Password, &permissions)
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, fmt.Errorf("find user: %w", err)
	}

	if err := json.Unmarshal([]byte(permissions), &u.Permissions); err != nil {
		return user.User{}, fmt.Errorf("%w: decode permissions for %q: %v", user.ErrCorruptRecord, username, err)
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT username, password, permissions FROM users`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		var permissions string
		if err := rows.Scan(&u.Username, &u.Password, &permissions); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		if err := json.Unmarshal([]byte(permissions), &u.Permissions); err != nil {
			return nil, fmt.Errorf("%w: decode permissions for %q: %v", user.ErrCorruptRecord, u.Username, err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdatePermissions(ctx context.Context, username string, permissions map[string]string) error {
	encoded, err := json.Marshal(permissions)
	if err != nil {
		return fmt.Errorf("encode permissions: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET permissions = ? WHERE username = ?`,
		string(encoded), username)
	if err != nil {
		return fmt.Errorf("update permissions: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update permissions: %w", err)
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}
