package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"time"     // Timestamps in payloads

	"movie_reviews/internal/domain"     // Importing domain models
	"movie_reviews/internal/repository" // Repository sentinels

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Envelope status labels
const (
	statusSuccess    = "success"
	statusBadRequest = "bad request"
	statusNotFound   = "not found"
	statusConflict   = "conflict"
	statusInternal   = "internal server error"
)

// respondOK writes the success envelope
func respondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data, "message": message, "status": statusSuccess})
}

// respondBadRequest writes the validation envelope
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message, "status": statusBadRequest})
}

// respondNotFound writes the not-found envelope
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"errors": repository.ErrNotFound.Error(), "message": message, "status": statusNotFound})
}

// respondConflict writes the uniqueness-conflict envelope
func respondConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{"errors": "duplicate record", "message": message, "status": statusConflict})
}

// respondInternal logs err and writes the generic failure envelope
func respondInternal(c *gin.Context, message string, err error, fields logrus.Fields) {
	logrus.WithFields(fields).WithError(err).WithField("request_id", c.GetString("request_id")).Error(message)
	c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal error", "message": message, "status": statusInternal})
}

// respondStoreError maps repository errors that a handler does not treat itself
func respondStoreError(c *gin.Context, err error, conflictMsg, failMsg string, fields logrus.Fields) {
	switch {
	case errors.Is(err, repository.ErrConflict):
		respondConflict(c, conflictMsg)
	default:
		respondInternal(c, failMsg, err, fields)
	}
}

// userData is the public shape of a user; it never carries the password
type userData struct {
	ID       uint    `json:"id"`       // User ID
	Email    string  `json:"email"`    // Email
	FullName string  `json:"fullName"` // Full name
	Role     *string `json:"role"`     // Role name, null when unset
}

func newUserData(u domain.User) userData {
	return userData{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.RoleName()}
}

// genreSummary is the list shape of a genre
type genreSummary struct {
	ID   uint   `json:"id"`   // Genre ID
	Name string `json:"name"` // Genre name
}

// movieData is the shape of a movie without its genres
type movieData struct {
	ID      uint   `json:"id"`      // Movie ID
	Title   string `json:"title"`   // Title
	Year    int    `json:"year"`    // Release year
	Ratings int    `json:"ratings"` // Ratings metadata
}

func newMovieData(m domain.Movie) movieData {
	return movieData{ID: m.ID, Title: m.Title, Year: m.Year, Ratings: m.Ratings}
}

// movieWithGenres is the list shape of a movie
type movieWithGenres struct {
	movieData
	Genres []domain.Genre `json:"genres"` // Linked genres
}

// movieGenreData is the shape of a created movie/genre link
type movieGenreData struct {
	MovieID uint         `json:"movie_id"` // Linked movie ID
	Movie   movieData    `json:"movie"`    // Linked movie
	GenreID uint         `json:"genre_id"` // Linked genre ID
	Genre   domain.Genre `json:"genre"`    // Linked genre
	ID      *uint        `json:"id"`       // Join rows have no surrogate ID, always null
}

// reviewData is the shape of a created review
type reviewData struct {
	ID        uint       `json:"id"`        // Review ID
	Review    string     `json:"review"`    // Review text
	Rate      int        `json:"rate"`      // Rate
	UsersID   uint       `json:"users_id"`  // Author ID
	MoviesID  uint       `json:"movies_id"` // Movie ID
	CreatedAt time.Time  `json:"CreatedAt"` // Creation time
	UpdatedAt time.Time  `json:"UpdatedAt"` // Last update time
	DeletedAt *time.Time `json:"DeletedAt"` // Soft-delete time, null
}

func newReviewData(r domain.Review) reviewData {
	var deletedAt *time.Time
	if r.DeletedAt.Valid {
		deletedAt = &r.DeletedAt.Time
	}
	return reviewData{
		ID:        r.ID,
		Review:    r.Review,
		Rate:      r.Rate,
		UsersID:   r.UserID,
		MoviesID:  r.MovieID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// reviewUser is the author summary nested in a listed review
type reviewUser struct {
	Email    string  `json:"email"`    // Author email
	FullName string  `json:"fullName"` // Author name
	Role     *string `json:"role"`     // Author role name
}

// reviewMovie is the movie summary nested in a listed review
type reviewMovie struct {
	Title   string `json:"title"`   // Title
	Year    int    `json:"year"`    // Release year
	Ratings int    `json:"ratings"` // Ratings metadata
}

// reviewListItem is the list shape of a review
type reviewListItem struct {
	reviewData
	Users  reviewUser  `json:"users"`  // Author
	Movies reviewMovie `json:"movies"` // Reviewed movie
}

func newReviewListItem(r domain.Review) reviewListItem {
	return reviewListItem{
		reviewData: newReviewData(r),
		Users:      reviewUser{Email: r.User.Email, FullName: r.User.FullName, Role: r.User.RoleName()},
		Movies:     reviewMovie{Title: r.Movie.Title, Year: r.Movie.Year, Ratings: r.Movie.Ratings},
	}
}
