package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campuscard/internal/domain"
	"campuscard/internal/middleware"
	"campuscard/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

func newAuthRouter(gdb *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	apiGroup := r.Group("/api")
	apiGroup.GET("/security-questions", SecurityQuestionsHandler(gdb))
	apiGroup.POST("/auth/login", LoginHandler(gdb, testJWTSecret))
	profileGroup := apiGroup.Group("/profile")
	profileGroup.Use(middleware.JWTAuthMiddleware(testJWTSecret))
	profileGroup.GET("", ProfileHandler(gdb))
	return r
}

func seedAuthUser(t *testing.T, gdb *gorm.DB) domain.User {
	t.Helper()
	school := domain.School{ID: 1, SchoolName: "College of Engineering"}
	if err := gdb.Create(&school).Error; err != nil {
		t.Fatal(err)
	}
	u := domain.User{Name: "Ava Li", Email: "ava@x.edu", SchoolID: &school.ID}
	if err := gdb.Create(&u).Error; err != nil {
		t.Fatal(err)
	}
	q := domain.SecurityQuestion{ID: 1, Question: "What was your first pet's name?"}
	if err := gdb.Create(&q).Error; err != nil {
		t.Fatal(err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("rex"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	a := domain.UserSecurityAnswer{ID: 1, UserID: u.ID, QuestionID: q.ID, Answer: string(hash)}
	if err := gdb.Create(&a).Error; err != nil {
		t.Fatal(err)
	}
	p := domain.UserProfile{UserID: u.ID, Major: "Computer Science", ClassYear: 2027,
		ResidenceType: "on-campus", Interests: "robotics"}
	if err := gdb.Create(&p).Error; err != nil {
		t.Fatal(err)
	}
	return u
}

func TestSecurityQuestionsHandler(t *testing.T) {
	gdb := newTestDB(t)
	seedAuthUser(t, gdb)

	w := doGET(t, newAuthRouter(gdb), "/api/security-questions")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var views []SecurityQuestionView
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(views) != 1 || views[0].Question != "What was your first pet's name?" {
		t.Errorf("questions = %+v", views)
	}
}

func TestLoginHandler(t *testing.T) {
	gdb := newTestDB(t)
	u := seedAuthUser(t, gdb)
	r := newAuthRouter(gdb)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid answer", `{"email":"ava@x.edu","question_id":1,"answer":"rex"}`, http.StatusOK},
		{"wrong answer", `{"email":"ava@x.edu","question_id":1,"answer":"fido"}`, http.StatusUnauthorized},
		{"unknown email", `{"email":"ghost@x.edu","question_id":1,"answer":"rex"}`, http.StatusUnauthorized},
		{"unknown question", `{"email":"ava@x.edu","question_id":9,"answer":"rex"}`, http.StatusUnauthorized},
		{"missing fields", `{"email":"ava@x.edu"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doPOST(t, r, "/api/auth/login", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp AuthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			claims, err := utils.ParseJWT(resp.Token, testJWTSecret)
			if err != nil {
				t.Fatalf("issued token does not parse: %v", err)
			}
			if claims.UserID != u.ID || claims.Email != u.Email {
				t.Errorf("claims = %+v, want user %d %s", claims, u.ID, u.Email)
			}
		})
	}
}

func TestProfileHandler(t *testing.T) {
	gdb := newTestDB(t)
	u := seedAuthUser(t, gdb)
	r := newAuthRouter(gdb)

	// Without a token the middleware rejects the request
	w := doGET(t, r, "/api/profile")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d, want 401", w.Code)
	}

	token, err := utils.GenerateJWT(u.ID, u.Email, testJWTSecret)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp ProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Email != "ava@x.edu" || resp.Name != "Ava Li" {
		t.Errorf("profile identity = %q %q", resp.Name, resp.Email)
	}
	if resp.School == nil || !strings.Contains(*resp.School, "Engineering") {
		t.Errorf("school = %v, want the seeded school name", resp.School)
	}
	if resp.Profile == nil || resp.Profile.Major != "Computer Science" || resp.Profile.ClassYear != 2027 {
		t.Errorf("profile extension = %+v", resp.Profile)
	}
}
