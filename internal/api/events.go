package api

import (
	"net/http" // HTTP status codes
	"time"

	"campuscard/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Exact decimal costs
	"gorm.io/gorm"                  // GORM ORM library
)

// EventView is the public projection of a campus event
type EventView struct {
	ID                uint            `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	IsVolunteering    bool            `json:"is_volunteering"`
	Location          string          `json:"location"`
	StartTime         string          `json:"start_time"` // ISO-8601 timestamp
	Cost              decimal.Decimal `json:"cost"`
	VolunteeringHours int             `json:"volunteering_hours"`
}

// ListEventsHandler returns the event catalog ordered by start time,
// optionally filtered to volunteering events via ?volunteering=true.
func ListEventsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Model(&domain.Event{})
		if c.Query("volunteering") == "true" {
			q = q.Where("is_volunteering = ?", true)
		}
		var events []domain.Event
		if err := q.Order("start_time").Find(&events).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
			return
		}
		views := make([]EventView, len(events))
		for i, e := range events {
			views[i] = EventView{
				ID:                e.ID,
				Name:              e.Name,
				Category:          e.Category,
				IsVolunteering:    e.IsVolunteering,
				Location:          e.Location,
				StartTime:         e.StartTime.Format(time.RFC3339),
				Cost:              e.Cost,
				VolunteeringHours: e.VolunteeringHours,
			}
		}
		c.JSON(http.StatusOK, views)
	}
}
