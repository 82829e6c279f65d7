package api

import (
	"movie_reviews/internal/repository" // Store operations
	"movie_reviews/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateGenreRequest represents a new genre
type CreateGenreRequest struct {
	Name string `json:"name" binding:"required"` // Genre name must be provided
}

// CreateGenreHandler adds a genre to the catalog
func CreateGenreHandler(genres *repository.GenreRepo, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateGenreRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "Field Name is required!")
			return
		}
		ctx := c.Request.Context()
		genre, err := genres.Create(ctx, req.Name)
		if err != nil {
			respondStoreError(c, err, "Genre already exists!", "Failed to add genre", logrus.Fields{"name": req.Name})
			return
		}
		logrus.WithFields(logrus.Fields{"genre_id": genre.ID, "name": genre.Name}).Info("Genre created")
		// Invalidate genre list cache
		if err := cache.Delete(ctx, utils.CacheKeyGenres); err != nil {
			logrus.WithError(err).Warn("Failed to invalidate genre cache")
		}
		respondOK(c, "Sucessfully Add Genre!", genre)
	}
}

// ListGenresHandler returns every genre
func ListGenresHandler(genres *repository.GenreRepo, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var resp []genreSummary // Response data
		// If cached data found, return it
		if found, err := cache.Get(ctx, utils.CacheKeyGenres, &resp); err == nil && found {
			c.Header("X-Cache", "HIT")
			respondOK(c, "Sucessfully Get Data!", resp)
			return
		}
		list, err := genres.List(ctx)
		if err != nil {
			respondInternal(c, "Failed to fetch genres", err, nil)
			return
		}
		// Map genres to response format
		resp = make([]genreSummary, len(list))
		for i, g := range list {
			resp[i] = genreSummary{ID: g.ID, Name: g.Name}
		}
		if cache.Enabled() {
			c.Header("X-Cache", "MISS")
			// Cache the response for future requests
			if err := cache.Set(ctx, utils.CacheKeyGenres, resp); err != nil {
				logrus.WithError(err).Warn("Failed to cache genres")
			}
		}
		respondOK(c, "Sucessfully Get Data!", resp)
	}
}
