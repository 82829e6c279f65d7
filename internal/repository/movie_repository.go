package repository

import (
	"context"
	"errors"

	"movie_reviews/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovieRepo struct{ DB *gorm.DB }

func NewMovieRepo(db *gorm.DB) *MovieRepo { return &MovieRepo{DB: db} }

// CreateMovieParams carries a new movie.
type CreateMovieParams struct {
	Title   string
	Year    int
	Ratings int
}

// Create inserts a movie without genres.
func (r *MovieRepo) Create(ctx context.Context, p CreateMovieParams) (domain.Movie, error) {
	movie := domain.Movie{Title: p.Title, Year: p.Year, Ratings: p.Ratings}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&movie).Error
	})
	if err != nil {
		return domain.Movie{}, translate(err)
	}
	return movie, nil
}

// List returns all movies with their genres eagerly loaded.
func (r *MovieRepo) List(ctx context.Context) ([]domain.Movie, error) {
	var movies []domain.Movie
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Preload("Genres", func(db *gorm.DB) *gorm.DB {
			return db.Order("genre.id")
		}).Order("id").Find(&movies).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return movies, nil
}

// LinkGenre tags a movie with a genre and returns both. Linking an existing
// pair again succeeds without adding a row.
func (r *MovieRepo) LinkGenre(ctx context.Context, movieID, genreID uint) (domain.Movie, domain.Genre, error) {
	var (
		movie domain.Movie
		genre domain.Genre
	)
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&movie, movieID).Error; err != nil {
			return err
		}
		if err := tx.First(&genre, genreID).Error; err != nil {
			return err
		}
		link := domain.MovieGenre{MovieID: movie.ID, GenreID: genre.ID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Movie{}, domain.Genre{}, ErrBadReference
	}
	if err != nil {
		return domain.Movie{}, domain.Genre{}, translate(err)
	}
	return movie, genre, nil
}
