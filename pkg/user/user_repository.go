package user

import (
	"context"

	"expiry-tracker/domain"
	"expiry-tracker/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		EnsureSchema(ctx context.Context, seedDefault bool) error
		List(ctx context.Context) ([]entities.User, error)
		Register(ctx context.Context, user *entities.User) error
		DeleteByName(ctx context.Context, name string) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// EnsureSchema creates the users table if absent. When the table is empty
// and seedDefault is set, a single "guest" row is inserted so the app always
// has a selectable user. Calling it again changes nothing.
func (r *userRepository) EnsureSchema(ctx context.Context, seedDefault bool) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&entities.User{}); err != nil {
		return err
	}

	if !seedDefault {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return r.Register(ctx, &entities.User{Name: domain.DefaultUserName})
	}
	return nil
}

// List returns users in storage order, not sorted by name.
func (r *userRepository) List(ctx context.Context) ([]entities.User, error) {
	var users []entities.User
	if err := r.db.WithContext(ctx).Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Register appends unconditionally; duplicate names are permitted.
func (r *userRepository) Register(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// DeleteByName removes every row matching the name. Products belonging to
// the name are left untouched; they become reachable again only if the name
// is reused.
func (r *userRepository) DeleteByName(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Where("name = ?", name).Delete(&entities.User{}).Error
}
