package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RISHIK92/gift-mama-admin-backend/initializers"
	"github.com/RISHIK92/gift-mama-admin-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testimonialServer(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&models.Testimonial{}); err != nil {
		t.Fatal(err)
	}
	previous := initializers.DB
	initializers.DB = db
	t.Cleanup(func() { initializers.DB = previous })

	gin.SetMode(gin.TestMode)
	server := gin.New()
	TestimonialRoutes(server)
	return server
}

func TestTestimonialListingIsPublic(t *testing.T) {
	server := testimonialServer(t)

	for _, testimonial := range []models.Testimonial{
		{Name: "Meera", Content: "Loved the mug", Rating: 5, IsActive: true},
		{Name: "Ravi", Content: "Pending review", Rating: 3, IsActive: false},
	} {
		if err := initializers.DB.Create(&testimonial).Error; err != nil {
			t.Fatal(err)
		}
	}

	// No Authorization header: the storefront calls this anonymously.
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/admin/testimonials", nil)
	server.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}
	body := recorder.Body.String()
	if !strings.Contains(body, "Meera") {
		t.Errorf("body %s missing the active testimonial", body)
	}
	if strings.Contains(body, "Ravi") {
		t.Errorf("body %s lists an inactive testimonial", body)
	}
}

func TestTestimonialWritesRequireAuth(t *testing.T) {
	server := testimonialServer(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/admin/testimonials",
		strings.NewReader(`{"name":"Meera","content":"Loved it","rating":5}`))
	request.Header.Set("Content-Type", "application/json")
	server.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusUnauthorized)
	}
}
