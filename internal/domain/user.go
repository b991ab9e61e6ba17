package domain

// User Model
type User struct {
	ID          uint   `gorm:"primaryKey"`           // Primary key
	Name        string // Full name
	Email       string `gorm:"uniqueIndex;not null"` // Unique email, the public identifier
	Address     string `gorm:"type:text"`            // Mailing address
	PhoneNumber string // Phone number

	SchoolID *uint // Foreign key to School, nullable
	WalletID *uint // Foreign key to Wallet, nullable
	FriendID *uint // Self-referential foreign key to another User, nullable

	School *School `gorm:"foreignKey:SchoolID"` // Associated school
	Wallet *Wallet `gorm:"foreignKey:WalletID"` // Associated wallet
	Friend *User   `gorm:"foreignKey:FriendID"` // Associated friend
}
