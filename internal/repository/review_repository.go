package repository

import (
	"context"

	"movie_reviews/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepo struct{ DB *gorm.DB }

func NewReviewRepo(db *gorm.DB) *ReviewRepo { return &ReviewRepo{DB: db} }

// CreateReviewParams carries a new review.
type CreateReviewParams struct {
	UserID  uint
	MovieID uint
	Review  string
	Rate    int
}

// Create inserts a review after checking that its user and movie exist.
func (r *ReviewRepo) Create(ctx context.Context, p CreateReviewParams) (domain.Review, error) {
	review := domain.Review{UserID: p.UserID, MovieID: p.MovieID, Review: p.Review, Rate: p.Rate}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &domain.User{}, p.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrBadReference
		}
		if ok, err = exists(tx, &domain.Movie{}, p.MovieID); err != nil {
			return err
		}
		if !ok {
			return ErrBadReference
		}
		return tx.Omit(clause.Associations).Create(&review).Error
	})
	if err != nil {
		return domain.Review{}, translate(err)
	}
	return review, nil
}

// ListByMovie returns the reviews of a movie with each reviewer (and role)
// and the movie preloaded. An unknown movie yields ErrBadReference; a known
// movie without reviews yields an empty slice.
func (r *ReviewRepo) ListByMovie(ctx context.Context, movieID uint) ([]domain.Review, error) {
	reviews := []domain.Review{}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &domain.Movie{}, movieID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrBadReference
		}
		return tx.Preload("User.Role").Preload("Movie").
			Where("movie_id = ?", movieID).Order("id").Find(&reviews).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}
