package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event Model, standalone campus event catalog entry
type Event struct {
	ID                uint            `gorm:"primaryKey"` // Primary key
	Name              string          // Event name
	Category          string          // Event category
	IsVolunteering    bool            // Whether the event counts as volunteering
	Location          string          // Venue
	StartTime         time.Time       // Scheduled start
	Cost              decimal.Decimal `gorm:"type:decimal(12,2)"` // Attendance cost, exact decimal
	VolunteeringHours int             // Credited volunteering hours
}
