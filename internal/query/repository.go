package query

import (
	"errors"
	"time"

	"campuscard/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Exact decimal money math
	"gorm.io/gorm"                  // GORM ORM library
)

const (
	listLimit   = 1000 // Hard ceiling on listing results, not configurable
	recentLimit = 20   // Fixed size of the recent-transactions shortcut
)

// schoolThreshold is the strict lower bound for the school-spend aggregate
var schoolThreshold = decimal.NewFromInt(1000)

// Repository answers read-only queries over the campus-card schema
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a Repository over an injected connection
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// TransactionView is the projection returned to API callers.
// Amount stays a decimal all the way to JSON so money never passes
// through binary floating point.
type TransactionView struct {
	ID       uint            `json:"id"`
	Merchant string          `json:"merchant"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Location string          `json:"location"`
	Date     string          `json:"date"` // ISO-8601 timestamp
}

// Metrics holds the derived per-user financial metrics.
// A nil field serializes as JSON null and means "absent": the metric could
// not be computed for this identity. SchoolOver1000 is zero (never nil) for
// a known user with no qualifying transactions, while CreditLimit stays nil
// without a wallet. The asymmetry is part of the contract.
type Metrics struct {
	CreditLimit    *decimal.Decimal `json:"credit_limit"`
	SchoolOver1000 *decimal.Decimal `json:"school_over_1000"`
}

func projectTransactions(txs []domain.Transaction) []TransactionView {
	views := make([]TransactionView, len(txs))
	for i, t := range txs {
		views[i] = TransactionView{
			ID:       t.ID,
			Merchant: t.Merchant,
			Category: t.Category,
			Amount:   t.Amount,
			Location: t.Location,
			Date:     t.Date.Format(time.RFC3339),
		}
	}
	return views
}

// UserMetrics resolves a user by exact email match and computes their
// credit limit and school-spend aggregate. An unknown or empty email
// yields both metrics absent; it is not an error.
func (r *Repository) UserMetrics(email string) (Metrics, error) {
	var m Metrics
	if email == "" {
		return m, nil
	}

	var user domain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m, nil // Unknown user and unknown metric are the same outcome
	}
	if err != nil {
		return m, err
	}

	// Credit limit: absent without a wallet, or when the wallet's limit is unset
	if user.WalletID != nil {
		var wallet domain.Wallet
		err := r.db.First(&wallet, *user.WalletID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return m, err
		}
		if err == nil && wallet.CreditLimit != nil {
			m.CreditLimit = wallet.CreditLimit
		}
	}

	// Sum of "school" transactions strictly over 1000, case-insensitive on
	// category. Comparison and summation happen in decimal space.
	var txs []domain.Transaction
	if err := r.db.
		Where("user_id = ? AND LOWER(category) = ?", user.ID, "school").
		Find(&txs).Error; err != nil {
		return m, err
	}
	sum := decimal.Zero
	for _, t := range txs {
		if t.Amount.GreaterThan(schoolThreshold) {
			sum = sum.Add(t.Amount)
		}
	}
	// Zero when nothing matches, never absent, for a known user
	m.SchoolOver1000 = &sum
	return m, nil
}

// ListTransactions returns up to 1000 transactions ordered most recent
// first, optionally scoped to the user with the given email. An email
// matching no user returns an empty slice, distinct from the unscoped call.
func (r *Repository) ListTransactions(email string) ([]TransactionView, error) {
	q := r.db.Model(&domain.Transaction{})
	if email != "" {
		var user domain.User
		err := r.db.Where("email = ?", email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []TransactionView{}, nil
		}
		if err != nil {
			return nil, err
		}
		q = q.Where("user_id = ?", user.ID)
	}

	var txs []domain.Transaction
	if err := q.Order("date DESC, id DESC").Limit(listLimit).Find(&txs).Error; err != nil {
		return nil, err
	}
	return projectTransactions(txs), nil
}

// RecentTransactions returns the 20 most recent transactions system-wide
func (r *Repository) RecentTransactions() ([]TransactionView, error) {
	var txs []domain.Transaction
	if err := r.db.Order("date DESC, id DESC").Limit(recentLimit).Find(&txs).Error; err != nil {
		return nil, err
	}
	return projectTransactions(txs), nil
}
