package api

import (
	"net/http" // HTTP status codes
	"time"     // Token lifetime

	"movie_reviews/internal/events"     // Domain events
	"movie_reviews/internal/repository" // Store operations
	"movie_reviews/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin" // Gin web framework
)

// Deps bundles everything the handlers need
type Deps struct {
	Users     *repository.UserRepo   // User store
	Genres    *repository.GenreRepo  // Genre store
	Movies    *repository.MovieRepo  // Movie store
	Reviews   *repository.ReviewRepo // Review store
	Cache     *utils.Cache           // List cache, may be disabled
	Events    events.Publisher       // Event sink
	JWTSecret string                 // Token signing key
	JWTTTL    time.Duration          // Token lifetime
}

// RegisterRoutes mounts every endpoint of the service on r
func RegisterRoutes(r *gin.Engine, d Deps) {
	if d.Events == nil {
		d.Events = events.Noop{} // Events are optional
	}

	// Health check endpoint
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	r.POST("/register", RegisterHandler(d.Users, d.Events))          // Registration endpoint
	r.POST("/signin", SignInHandler(d.Users, d.JWTSecret, d.JWTTTL)) // Sign-in endpoint

	// Catalog routes
	g := r.Group("/movie_reviews")
	g.GET("/user", GetUserHandler(d.Users))                            // Profile fetch
	g.PUT("/user", UpdateUserHandler(d.Users))                         // Profile update
	g.POST("/genre", CreateGenreHandler(d.Genres, d.Cache))            // Add genre
	g.GET("/genre", ListGenresHandler(d.Genres, d.Cache))              // List genres
	g.POST("/movies", CreateMovieHandler(d.Movies, d.Cache))           // Add movie
	g.GET("/movies", ListMoviesHandler(d.Movies, d.Cache))             // List movies
	g.POST("/movies/genre", LinkGenreHandler(d.Movies, d.Cache))       // Tag movie with genre
	g.POST("/movies/review", CreateReviewHandler(d.Reviews, d.Events)) // Add review
	g.GET("/movies/review", ListReviewsHandler(d.Reviews))             // List reviews of a movie
}
