package api

import (
	"net/http" // HTTP status codes

	"campuscard/internal/domain" // Importing domain models
	"campuscard/internal/utils"  // JWT helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Answer hash comparison
	"gorm.io/gorm"               // GORM ORM library
)

// LoginRequest identifies a user by email and one answered security question
type LoginRequest struct {
	Email      string `json:"email" binding:"required"`       // Email must be provided
	QuestionID uint   `json:"question_id" binding:"required"` // Question being answered
	Answer     string `json:"answer" binding:"required"`      // Plaintext answer
}

// AuthResponse carries the issued token
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

// SecurityQuestionView is the public projection of a question bank entry
type SecurityQuestionView struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
}

// SecurityQuestionsHandler lists the security question bank
func SecurityQuestionsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var questions []domain.SecurityQuestion
		if err := db.Order("id").Find(&questions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
			return
		}
		views := make([]SecurityQuestionView, len(questions))
		for i, q := range questions {
			views[i] = SecurityQuestionView{ID: q.ID, Question: q.Question}
		}
		c.JSON(http.StatusOK, views)
	}
}

// LoginHandler verifies a security-question answer and issues a JWT.
// Every failure mode returns the same generic unauthorized response.
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var user domain.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		var answer domain.UserSecurityAnswer
		if err := db.Where("user_id = ? AND question_id = ?", user.ID, req.QuestionID).
			First(&answer).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Stored answers are bcrypt hashes written at ingest time
		if err := bcrypt.CompareHashAndPassword([]byte(answer.Answer), []byte(req.Answer)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		token, err := utils.GenerateJWT(user.ID, user.Email, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}
