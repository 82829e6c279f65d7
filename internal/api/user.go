package api

import (
	"errors" // Error inspection
	"io"     // Empty body detection

	"movie_reviews/internal/repository" // Store operations

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// UpdateUserRequest lists the profile fields a user may change
type UpdateUserRequest struct {
	FullName *string `json:"fullName"` // New full name, optional
	Password *string `json:"password"` // New password, optional
}

// GetUserHandler returns the profile of the user named by ?email
func GetUserHandler(users *repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email") // Natural key
		user, err := users.FindByEmail(c.Request.Context(), email)
		if errors.Is(err, repository.ErrNotFound) {
			// If user not found, return not found
			respondNotFound(c, "User not found!")
			return
		}
		if err != nil {
			respondInternal(c, "Failed to fetch user", err, logrus.Fields{"email": email})
			return
		}
		respondOK(c, "Sucessfully Get Data!", newUserData(user))
	}
}

// UpdateUserHandler changes the full name and/or password of the user named by ?email
func UpdateUserHandler(users *repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email") // Natural key
		var req UpdateUserRequest // Bind JSON request to struct
		// An empty body is a no-op update
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondBadRequest(c, "Invalid request body!")
			return
		}
		user, err := users.Update(c.Request.Context(), email, repository.UpdateUserParams{
			FullName: req.FullName, // Changed when non-empty
			Password: req.Password, // Re-hashed when non-empty
		})
		if errors.Is(err, repository.ErrNotFound) {
			// If user not found, return not found
			respondNotFound(c, "User not found!")
			return
		}
		if err != nil {
			respondInternal(c, "Failed to update user", err, logrus.Fields{"email": email})
			return
		}
		// Log the profile change without its values
		logrus.WithFields(logrus.Fields{
			"user_id":          user.ID,                                    // User ID
			"full_name_change": req.FullName != nil && *req.FullName != "", // Name changed
			"password_change":  req.Password != nil && *req.Password != "", // Password changed
		}).Info("User updated")
		respondOK(c, "Sucessfully Get Data!", newUserData(user))
	}
}
