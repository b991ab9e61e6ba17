package domain

// UserSecurityAnswer Model
type UserSecurityAnswer struct {
	ID         uint   `gorm:"primaryKey"` // Primary key
	UserID     uint   `gorm:"not null"`   // Foreign key to User
	QuestionID uint   `gorm:"not null"`   // Foreign key to SecurityQuestion
	Answer     string // bcrypt hash of the answer

	User     *User             `gorm:"foreignKey:UserID"`     // Answering user
	Question *SecurityQuestion `gorm:"foreignKey:QuestionID"` // Answered question
}
