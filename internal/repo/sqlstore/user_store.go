package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vetware/go-clinic-backend/internal/domain"
)

// UserStore implements repo.UserRepository with hand-written SQL. Users are
// keyed by username; roles are replaced wholesale on every save.
type UserStore struct {
	db *DB
}

// NewUserStore returns a user repository bound to db.
func NewUserStore(db *DB) *UserStore { return &UserStore{db: db} }

// FindByUsername returns the user with its roles attached, or
// repo.ErrNotFound.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := s.db.sql.QueryRowContext(ctx,
		s.db.rebind("SELECT username, password, enabled FROM users WHERE username = ?"), username)
	var u domain.User
	if err := row.Scan(&u.Username, &u.Password, &u.Enabled); err != nil {
		return nil, notFound(err)
	}

	rows, err := s.db.sql.QueryContext(ctx,
		s.db.rebind("SELECT username, role FROM roles WHERE username = ?"), username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var r domain.Role
		if err := rows.Scan(&r.Username, &r.Name); err != nil {
			return nil, err
		}
		u.Roles = append(u.Roles, r)
	}
	return &u, rows.Err()
}

// Save upserts the user row by username and replaces the user's roles with
// the current set, all in one transaction. A failure inserting any role
// rolls back the user row as well.
func (s *UserStore) Save(ctx context.Context, u *domain.User) error {
	return s.db.inTx(ctx, func(tx *sql.Tx) error {
		var existing string
		err := tx.QueryRowContext(ctx,
			s.db.rebind("SELECT username FROM users WHERE username = ?"), u.Username).
			Scan(&existing)
		switch {
		case err == nil:
			if _, err := tx.ExecContext(ctx,
				s.db.rebind("UPDATE users SET password = ?, enabled = ? WHERE username = ?"),
				u.Password, u.Enabled, u.Username); err != nil {
				return err
			}
		case errors.Is(err, sql.ErrNoRows):
			if _, err := tx.ExecContext(ctx,
				s.db.rebind("INSERT INTO users (username, password, enabled) VALUES (?, ?, ?)"),
				u.Username, u.Password, u.Enabled); err != nil {
				return err
			}
		default:
			return err
		}

		if _, err := tx.ExecContext(ctx,
			s.db.rebind("DELETE FROM roles WHERE username = ?"), u.Username); err != nil {
			return err
		}
		for _, role := range u.Roles {
			if role.Name == "" {
				continue
			}
			if _, err := tx.ExecContext(ctx,
				s.db.rebind("INSERT INTO roles (username, role) VALUES (?, ?)"),
				u.Username, role.Name); err != nil {
				return err
			}
		}
		return nil
	})
}
