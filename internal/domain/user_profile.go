package domain

// UserProfile Model, one-to-one extension of User
type UserProfile struct {
	UserID        uint   `gorm:"primaryKey"` // Primary key and foreign key to User
	Major         string // Declared major
	ClassYear     int    // Graduation year
	ResidenceType string // On/off campus residence type
	Interests     string `gorm:"type:text"` // Free-text interests

	User *User `gorm:"foreignKey:UserID"` // Extended user
}
