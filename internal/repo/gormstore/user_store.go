package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vetware/go-clinic-backend/internal/domain"
)

// UserStore implements repo.UserRepository on GORM. Users are keyed by
// username; roles are replaced wholesale on every save.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore returns a user repository bound to db.
func NewUserStore(db *gorm.DB) *UserStore { return &UserStore{db: db} }

// FindByUsername returns the user with its roles attached, or
// repo.ErrNotFound.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var row userRow
	if err := s.db.WithContext(ctx).First(&row, "username = ?", username).Error; err != nil {
		return nil, notFound(err)
	}
	u := domain.User{
		Username: row.Username,
		Password: row.Password,
		Enabled:  row.Enabled,
	}
	var roles []roleRow
	if err := s.db.WithContext(ctx).Where("username = ?", username).Find(&roles).Error; err != nil {
		return nil, err
	}
	for _, r := range roles {
		u.Roles = append(u.Roles, domain.Role{Name: r.Role, Username: r.Username})
	}
	return &u, nil
}

// Save upserts the user row by username and replaces the user's roles with
// the current set, all in one transaction. A failure inserting any role
// rolls back the user row as well.
func (s *UserStore) Save(ctx context.Context, u *domain.User) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing userRow
		err := tx.First(&existing, "username = ?", u.Username).Error
		switch {
		case err == nil:
			err = tx.Model(&userRow{}).
				Where("username = ?", u.Username).
				Updates(map[string]any{
					"password": u.Password,
					"enabled":  u.Enabled,
				}).Error
			if err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := userRow{Username: u.Username, Password: u.Password, Enabled: u.Enabled}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		default:
			return err
		}

		if err := tx.Where("username = ?", u.Username).Delete(&roleRow{}).Error; err != nil {
			return err
		}
		for _, role := range u.Roles {
			if role.Name == "" {
				continue
			}
			row := roleRow{Username: u.Username, Role: role.Name}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
