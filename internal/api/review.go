package api

import (
	"errors"  // Error inspection
	"strconv" // Query parsing
	"time"    // Event timestamps

	"movie_reviews/internal/events"     // Domain events
	"movie_reviews/internal/repository" // Store operations

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateReviewRequest represents a new review. Numbers are pointers so that
// a zero rate is accepted.
type CreateReviewRequest struct {
	UserID  *uint  `json:"user_id" binding:"required"`  // Author ID must be provided
	MovieID *uint  `json:"movie_id" binding:"required"` // Movie ID must be provided
	Review  string `json:"review" binding:"required"`   // Review text must be provided
	Rate    *int   `json:"rate" binding:"required"`     // Rate must be provided
}

// CreateReviewHandler attaches a review to a movie
func CreateReviewHandler(reviews *repository.ReviewRepo, pub events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateReviewRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "Field user_id, movie_id, review, rate is required!")
			return
		}
		ctx := c.Request.Context()
		review, err := reviews.Create(ctx, repository.CreateReviewParams{
			UserID:  *req.UserID,  // Author ID
			MovieID: *req.MovieID, // Movie ID
			Review:  req.Review,   // Review text
			Rate:    *req.Rate,    // Rate
		})
		if errors.Is(err, repository.ErrBadReference) {
			// User or movie does not resolve
			respondBadRequest(c, "User or Movie not found!")
			return
		}
		if err != nil {
			respondInternal(c, "Failed to add review", err, logrus.Fields{"user_id": *req.UserID, "movie_id": *req.MovieID})
			return
		}
		// Log successful review
		logrus.WithFields(logrus.Fields{
			"review_id": review.ID,      // Review ID
			"user_id":   review.UserID,  // Author ID
			"movie_id":  review.MovieID, // Movie ID
			"rate":      review.Rate,    // Rate
		}).Info("Review created")
		// Notify listeners, failures do not affect the response
		event := events.ReviewCreated{ReviewID: review.ID, UserID: review.UserID, MovieID: review.MovieID, Rate: review.Rate, OccurredAt: time.Now().UTC()}
		if err := pub.Publish(ctx, events.QueueReviewCreated, event); err != nil {
			logrus.WithError(err).WithField("review_id", review.ID).Warn("Failed to publish review.created")
		}
		respondOK(c, "Sucessfully Add Review!", newReviewData(review))
	}
}

// ListReviewsHandler returns the reviews of the movie named by ?movie_id
func ListReviewsHandler(reviews *repository.ReviewRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		movieID, err := strconv.ParseUint(c.Query("movie_id"), 10, 0)
		if err != nil {
			respondBadRequest(c, "Field movie_id is required!")
			return
		}
		list, err := reviews.ListByMovie(c.Request.Context(), uint(movieID))
		if errors.Is(err, repository.ErrBadReference) {
			respondBadRequest(c, "Movie not found!")
			return
		}
		if err != nil {
			respondInternal(c, "Failed to fetch reviews", err, logrus.Fields{"movie_id": movieID})
			return
		}
		// Map reviews to response format
		resp := make([]reviewListItem, len(list))
		for i, r := range list {
			resp[i] = newReviewListItem(r)
		}
		respondOK(c, "Sucessfully Get Data!", resp)
	}
}
