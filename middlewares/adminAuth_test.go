package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AdminAuth(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"adminId":    ctx.GetInt("adminId"),
			"adminEmail": ctx.GetString("adminEmail"),
		})
	})
	return router
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestAdminAuthMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := setupRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusUnauthorized)
	}
}

func TestAdminAuthInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := setupRouter()

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", signToken(t, "other-secret", jwt.MapClaims{"id": 1.0})},
		{"expired", signToken(t, testSecret, jwt.MapClaims{
			"id":  1.0,
			"exp": time.Now().Add(-time.Hour).Unix(),
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/protected", nil)
			request.Header.Set("Authorization", "Bearer "+tt.token)
			router.ServeHTTP(recorder, request)

			if recorder.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestAdminAuthValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := setupRouter()

	token := signToken(t, testSecret, jwt.MapClaims{
		"id":    7.0,
		"email": "admin@giftmama.in",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusOK)
	}
	body := recorder.Body.String()
	for _, want := range []string{`"adminId":7`, `"adminEmail":"admin@giftmama.in"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body %q missing %q", body, want)
		}
	}
}

func TestAdminAuthBareTokenWithoutBearerPrefix(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := setupRouter()

	token := signToken(t, testSecret, jwt.MapClaims{
		"id":  1.0,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", token)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusOK)
	}
}
