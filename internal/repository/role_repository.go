package repository

import (
	"context"

	"movie_reviews/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoleRepo manages the role labels users are registered under.
type RoleRepo struct{ DB *gorm.DB }

func NewRoleRepo(db *gorm.DB) *RoleRepo { return &RoleRepo{DB: db} }

// Ensure inserts every missing role name. Existing names are left alone.
func (r *RoleRepo) Ensure(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	roles := make([]domain.Role, 0, len(names))
	for _, name := range names {
		roles = append(roles, domain.Role{Name: name})
	}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&roles).Error
	})
	return translate(err)
}

// List returns every role ordered by id.
func (r *RoleRepo) List(ctx context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Order("id").Find(&roles).Error
	})
	return roles, translate(err)
}
