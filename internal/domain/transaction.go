package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction Model
type Transaction struct {
	ID       uint            `gorm:"primaryKey"` // Primary key
	UserID   uint            `gorm:"not null"`   // Foreign key to the owning User
	WalletID *uint           // Foreign key to Wallet, nullable
	Merchant string          // Merchant name
	Category string          // Free-text category
	Amount   decimal.Decimal `gorm:"type:decimal(12,2)"` // Amount, exact decimal; sign unconstrained
	Location string          // Free-text location
	Date     time.Time       // Timestamp of the transaction

	User   *User   `gorm:"foreignKey:UserID"`   // Owning user
	Wallet *Wallet `gorm:"foreignKey:WalletID"` // Associated wallet
}
