package domain

import "github.com/shopspring/decimal"

// Wallet Model
type Wallet struct {
	ID          uint             `gorm:"primaryKey"`         // Primary key
	Balance     decimal.Decimal  `gorm:"type:decimal(12,2)"` // Current balance, exact decimal
	CreditLimit *decimal.Decimal `gorm:"type:decimal(12,2)"` // Credit limit, nullable when unset
	CreditScore int              // Integer credit score
}
