package repository

import (
	"context"

	"movie_reviews/internal/domain"

	"gorm.io/gorm"
)

type GenreRepo struct{ DB *gorm.DB }

func NewGenreRepo(db *gorm.DB) *GenreRepo { return &GenreRepo{DB: db} }

// Create inserts a genre; a duplicate name yields ErrConflict.
func (r *GenreRepo) Create(ctx context.Context, name string) (domain.Genre, error) {
	genre := domain.Genre{Name: name}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&genre).Error
	})
	if err != nil {
		return domain.Genre{}, translate(err)
	}
	return genre, nil
}

// List returns all genres in creation order.
func (r *GenreRepo) List(ctx context.Context) ([]domain.Genre, error) {
	var genres []domain.Genre
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Order("id").Find(&genres).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return genres, nil
}
