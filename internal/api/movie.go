package api

import (
	"errors" // Error inspection

	"movie_reviews/internal/domain"     // Importing domain models
	"movie_reviews/internal/repository" // Store operations
	"movie_reviews/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateMovieRequest represents a new movie. Numbers are pointers so that
// zero is a supplied value, not a missing one.
type CreateMovieRequest struct {
	Title   string `json:"title" binding:"required"`   // Title must be provided
	Year    *int   `json:"year" binding:"required"`    // Year must be provided
	Ratings *int   `json:"ratings" binding:"required"` // Ratings must be provided
}

// LinkGenreRequest tags a movie with a genre
type LinkGenreRequest struct {
	MoviesID *uint `json:"moviesID" binding:"required"` // Movie ID must be provided
	GenreID  *uint `json:"genreID" binding:"required"`  // Genre ID must be provided
}

// CreateMovieHandler adds a movie to the catalog
func CreateMovieHandler(movies *repository.MovieRepo, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateMovieRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "Field Title, Year, Ratings is required!")
			return
		}
		ctx := c.Request.Context()
		movie, err := movies.Create(ctx, repository.CreateMovieParams{
			Title:   req.Title,    // Title
			Year:    *req.Year,    // Release year
			Ratings: *req.Ratings, // Ratings metadata
		})
		if err != nil {
			respondStoreError(c, err, "Movie already exists!", "Failed to add movie", logrus.Fields{"title": req.Title})
			return
		}
		logrus.WithFields(logrus.Fields{"movie_id": movie.ID, "title": movie.Title}).Info("Movie created")
		// Invalidate movie list cache
		if err := cache.Delete(ctx, utils.CacheKeyMovies); err != nil {
			logrus.WithError(err).Warn("Failed to invalidate movie cache")
		}
		respondOK(c, "Sucessfully Add Movie!", newMovieData(movie))
	}
}

// ListMoviesHandler returns every movie with its genres
func ListMoviesHandler(movies *repository.MovieRepo, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var resp []movieWithGenres // Response data
		// If cached data found, return it
		if found, err := cache.Get(ctx, utils.CacheKeyMovies, &resp); err == nil && found {
			c.Header("X-Cache", "HIT")
			respondOK(c, "Sucessfully Get Data!", resp)
			return
		}
		list, err := movies.List(ctx)
		if err != nil {
			respondInternal(c, "Failed to fetch movies", err, nil)
			return
		}
		// Map movies to response format
		resp = make([]movieWithGenres, len(list))
		for i, m := range list {
			genres := m.Genres
			if genres == nil {
				genres = []domain.Genre{} // Serialize as [] rather than null
			}
			resp[i] = movieWithGenres{movieData: newMovieData(m), Genres: genres}
		}
		if cache.Enabled() {
			c.Header("X-Cache", "MISS")
			// Cache the response for future requests
			if err := cache.Set(ctx, utils.CacheKeyMovies, resp); err != nil {
				logrus.WithError(err).Warn("Failed to cache movies")
			}
		}
		respondOK(c, "Sucessfully Get Data!", resp)
	}
}

// LinkGenreHandler tags a movie with a genre; relinking is a no-op success
func LinkGenreHandler(movies *repository.MovieRepo, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LinkGenreRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "Field moviesID, genreID is required!")
			return
		}
		ctx := c.Request.Context()
		movie, genre, err := movies.LinkGenre(ctx, *req.MoviesID, *req.GenreID)
		if errors.Is(err, repository.ErrBadReference) {
			// Either ID does not resolve
			respondBadRequest(c, "Movie or Genre not found!")
			return
		}
		if err != nil {
			respondInternal(c, "Failed to add genre to movie", err, logrus.Fields{"movie_id": *req.MoviesID, "genre_id": *req.GenreID})
			return
		}
		logrus.WithFields(logrus.Fields{"movie_id": movie.ID, "genre_id": genre.ID}).Info("Genre linked to movie")
		// Invalidate movie list cache
		if err := cache.Delete(ctx, utils.CacheKeyMovies); err != nil {
			logrus.WithError(err).Warn("Failed to invalidate movie cache")
		}
		respondOK(c, "Sucessfully Add Genre to Movie!", movieGenreData{
			MovieID: movie.ID,            // Linked movie ID
			Movie:   newMovieData(movie), // Linked movie
			GenreID: genre.ID,            // Linked genre ID
			Genre:   genre,               // Linked genre
		})
	}
}
