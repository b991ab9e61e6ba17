package domain

// School Model
type School struct {
	ID         uint   `gorm:"primaryKey"` // Primary key
	SchoolName string // Display name of the school
}
