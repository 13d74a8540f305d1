package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RISHIK92/gift-mama-admin-backend/models"
	"github.com/gin-gonic/gin"
)

func TestGetHomeReturnsEmptyOccasionArrays(t *testing.T) {
	db := openTestDB(t)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin/home", GetHome)

	// Homepage saved, occasion banner never touched.
	if err := db.Create(&models.HomeImages{FlashSaleDescription: "Deals"}).Error; err != nil {
		t.Fatal(err)
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/admin/home", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}
	body := recorder.Body.String()
	for _, want := range []string{`"occasionName":[]`, `"occasionImages":[]`} {
		if !strings.Contains(body, want) {
			t.Errorf("body %s missing %s", body, want)
		}
	}
	if strings.Contains(body, `"occasionName":null`) || strings.Contains(body, `"occasionImages":null`) {
		t.Error("occasion fields must not marshal as null")
	}
}

func TestGetHomeWithoutSavedContent(t *testing.T) {
	openTestDB(t)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin/home", GetHome)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/admin/home", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusNotFound)
	}
}
