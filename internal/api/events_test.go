package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"campuscard/internal/domain"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func newEventsRouter(gdb *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/events", ListEventsHandler(gdb))
	return r
}

func TestListEventsHandler(t *testing.T) {
	gdb := newTestDB(t)
	events := []domain.Event{
		{ID: 1, Name: "Fall Fair", Category: "social", IsVolunteering: false,
			Location: "Quad", StartTime: time.Date(2025, 11, 5, 17, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Food Drive", Category: "service", IsVolunteering: true,
			Location: "Student Center", StartTime: time.Date(2025, 12, 1, 9, 30, 0, 0, time.UTC),
			VolunteeringHours: 3},
	}
	for i := range events {
		if err := gdb.Create(&events[i]).Error; err != nil {
			t.Fatal(err)
		}
	}
	r := newEventsRouter(gdb)

	w := doGET(t, r, "/api/events")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var all []EventView
	if err := json.Unmarshal(w.Body.Bytes(), &all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("events = %d, want 2", len(all))
	}
	if all[0].Name != "Fall Fair" {
		t.Errorf("first event = %q, want start-time order", all[0].Name)
	}

	w = doGET(t, r, "/api/events?volunteering=true")
	var filtered []EventView
	if err := json.Unmarshal(w.Body.Bytes(), &filtered); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(filtered) != 1 || !filtered[0].IsVolunteering {
		t.Errorf("filtered events = %+v, want only the volunteering event", filtered)
	}
	if filtered[0].VolunteeringHours != 3 {
		t.Errorf("volunteering hours = %d, want 3", filtered[0].VolunteeringHours)
	}
}
