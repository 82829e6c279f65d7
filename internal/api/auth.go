package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"time"     // Token expiry

	"movie_reviews/internal/events"     // Domain events
	"movie_reviews/internal/repository" // Store operations
	"movie_reviews/internal/utils"      // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request and Response structs
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
	FullName string `json:"fullName" binding:"required"` // Full name must be provided
	Role     string `json:"role" binding:"required"`     // Role name must be provided
}

// Request struct for sign-in
type SignInRequest struct {
	Email    string `json:"email"`    // Checked against the store, not the validator
	Password string `json:"password"` // Checked against the store, not the validator
}

// Response struct for a successful sign-in
type SignInResponse struct {
	Code   int    `json:"code"`   // Always 200
	Expire string `json:"expire"` // Token expiry, RFC 3339
	Token  string `json:"token"`  // Signed JWT
}

// Response struct for a failed sign-in
type SignInError struct {
	Code    int    `json:"code"`    // Always 401
	Message string `json:"message"` // Same text for every failure
}

// RegisterHandler creates a user account
func RegisterHandler(users *repository.UserRepo, pub events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding or validation fails, return bad request
			respondBadRequest(c, "Field Email, Password, FullName, Role is required!")
			return
		}
		// Hash the password and create the user
		user, err := users.Create(c.Request.Context(), repository.CreateUserParams{
			Email:    req.Email,    // Natural key
			Password: req.Password, // Hashed by the repository
			FullName: req.FullName, // Display name
			RoleName: req.Role,     // Resolved by name
		})
		if err != nil {
			// Duplicate email maps to conflict, anything else to internal error
			respondStoreError(c, err, "Email already registered!", "Failed to register user", logrus.Fields{"email": req.Email})
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,          // User ID
			"email":   user.Email,       // Email
			"role":    user.RoleLabel(), // Resolved role, empty when unset
		}).Info("User registered")
		// Notify listeners, failures do not affect the response
		event := events.UserRegistered{UserID: user.ID, Email: user.Email, Role: user.RoleName(), OccurredAt: time.Now().UTC()}
		if err := pub.Publish(c.Request.Context(), events.QueueUserRegistered, event); err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).Warn("Failed to publish user.registered")
		}
		respondOK(c, "Sucessfully Register!", newUserData(user))
	}
}

// SignInHandler authenticates a user and returns a signed token
func SignInHandler(users *repository.UserRepo, jwtSecret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignInRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			respondBadRequest(c, "Invalid request body!")
			return
		}
		// Unknown email, empty password and wrong password look the same
		user, err := users.Authenticate(c.Request.Context(), req.Email, req.Password)
		if errors.Is(err, repository.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, SignInError{Code: http.StatusUnauthorized, Message: "incorrect Username or Password"})
			return
		}
		if err != nil {
			respondInternal(c, "Failed to sign in", err, logrus.Fields{"email": req.Email})
			return
		}
		// Generate JWT token, the role claim is empty when unset
		token, expire, err := utils.GenerateJWT(user.ID, user.Email, user.RoleLabel(), jwtSecret, ttl)
		if err != nil {
			// If token generation fails, return internal server error
			respondInternal(c, "Failed to generate token", err, logrus.Fields{"user_id": user.ID})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, SignInResponse{
			Code:   http.StatusOK,               // Success code
			Expire: expire.Format(time.RFC3339), // Expiry
			Token:  token,                       // Signed token
		})
	}
}
