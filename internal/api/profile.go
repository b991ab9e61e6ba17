package api

import (
	"errors"
	"net/http" // HTTP status codes

	"campuscard/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// ProfileResponse combines the user row with its optional school and
// profile extension. Missing pieces serialize as null.
type ProfileResponse struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Address     string       `json:"address"`
	PhoneNumber string       `json:"phone_number"`
	School      *string      `json:"school"`
	Profile     *ProfileView `json:"profile"`
}

// ProfileView is the one-to-one profile extension projection
type ProfileView struct {
	Major         string `json:"major"`
	ClassYear     int    `json:"class_year"`
	ResidenceType string `json:"residence_type"`
	Interests     string `json:"interests"`
}

// ProfileHandler returns the authenticated user's profile. The user ID
// comes from the JWT claims set by the auth middleware.
func ProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user domain.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		resp := ProfileResponse{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			Address:     user.Address,
			PhoneNumber: user.PhoneNumber,
		}
		if user.SchoolID != nil {
			var school domain.School
			if err := db.First(&school, *user.SchoolID).Error; err == nil {
				resp.School = &school.SchoolName
			}
		}
		var profile domain.UserProfile
		err := db.Where("user_id = ?", user.ID).First(&profile).Error
		if err == nil {
			resp.Profile = &ProfileView{
				Major:         profile.Major,
				ClassYear:     profile.ClassYear,
				ResidenceType: profile.ResidenceType,
				Interests:     profile.Interests,
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
