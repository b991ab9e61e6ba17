package domain

// SecurityQuestion Model
type SecurityQuestion struct {
	ID       uint   `gorm:"primaryKey"` // Primary key
	Question string // Question text
}
