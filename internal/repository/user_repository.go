package repository

import (
	"context"
	"errors"

	"movie_reviews/internal/domain"
	"movie_reviews/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepo reads and writes users and their roles.
type UserRepo struct {
	DB         *gorm.DB
	BcryptCost int
}

func NewUserRepo(db *gorm.DB, bcryptCost int) *UserRepo {
	return &UserRepo{DB: db, BcryptCost: bcryptCost}
}

// CreateUserParams carries a registration.
type CreateUserParams struct {
	Email    string
	Password string
	FullName string
	RoleName string
}

// UpdateUserParams lists the mutable profile fields. Nil or empty values
// leave the stored field untouched.
type UpdateUserParams struct {
	FullName *string
	Password *string
}

// Create hashes the password and inserts the user. The role is looked up by
// name; an unknown role leaves the user without one.
func (r *UserRepo) Create(ctx context.Context, p CreateUserParams) (domain.User, error) {
	hash, err := utils.HashPassword(p.Password, r.BcryptCost)
	if err != nil {
		return domain.User{}, err
	}
	user := domain.User{Email: p.Email, Password: hash, FullName: p.FullName}
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var role domain.Role
		err := tx.Where("name = ?", p.RoleName).First(&role).Error
		switch {
		case err == nil:
			user.RoleID = &role.ID
			user.Role = &role
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Omit(clause.Associations).Create(&user).Error
	})
	if err != nil {
		return domain.User{}, translate(err)
	}
	return user, nil
}

// Authenticate returns the user whose password matches. Unknown emails and
// wrong passwords both yield ErrNotAuthenticated.
func (r *UserRepo) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	user, err := r.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return domain.User{}, ErrNotAuthenticated
	}
	if err != nil {
		return domain.User{}, err
	}
	if !utils.VerifyPassword(user.Password, password) {
		return domain.User{}, ErrNotAuthenticated
	}
	return user, nil
}

// FindByEmail fetches a user with its role.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var user domain.User
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Preload("Role").Where("email = ?", email).First(&user).Error
	})
	if err != nil {
		return domain.User{}, translate(err)
	}
	return user, nil
}

// Update changes the full name and/or password of the user with email.
func (r *UserRepo) Update(ctx context.Context, email string, p UpdateUserParams) (domain.User, error) {
	updates := map[string]any{}
	if p.FullName != nil && *p.FullName != "" {
		updates["full_name"] = *p.FullName
	}
	if p.Password != nil && *p.Password != "" {
		hash, err := utils.HashPassword(*p.Password, r.BcryptCost)
		if err != nil {
			return domain.User{}, err
		}
		updates["password"] = hash
	}
	var user domain.User
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", email).First(&user).Error; err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(&user).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.Preload("Role").First(&user, user.ID).Error
	})
	if err != nil {
		return domain.User{}, translate(err)
	}
	return user, nil
}
