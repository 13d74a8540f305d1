package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/RISHIK92/gift-mama-admin-backend/initializers"
	"github.com/RISHIK92/gift-mama-admin-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	msgAdminExists        = "Admin already exists"
	msgInvalidCredentials = "Invalid email or password"
	msgAdminNotFound      = "Admin not found"
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(admin models.Admin) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    admin.ID,
		"email": admin.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour * 24 * 7).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// Register handles POST /admin/register
func Register(ctx *gin.Context) {
	var registerData models.RegisterData
	if err := ctx.ShouldBindJSON(&registerData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var existingAdmin models.Admin
	result := initializers.DB.Where("email = ?", registerData.Email).First(&existingAdmin)
	if result.Error == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgAdminExists)
		return
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		log.Println("Database error during admin check:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	hashedPassword, err := hashPassword(registerData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	admin := models.Admin{
		FirstName: registerData.FirstName,
		LastName:  registerData.LastName,
		Email:     registerData.Email,
		Phone:     registerData.Phone,
		Password:  hashedPassword,
	}
	if result := initializers.DB.Create(&admin); result.Error != nil {
		log.Println("Admin creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Admin registered successfully",
		"admin":   admin,
	})
}

// SignIn handles POST /admin/signin
func SignIn(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var admin models.Admin
	if result := initializers.DB.Where("email = ?", loginData.Email).First(&admin); result.Error != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(admin.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokenString, err := generateJWT(admin)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Admin logged in successfully",
		"token":   tokenString,
	})
}

// GetDashboard handles GET /admin/dashboard
func GetDashboard(ctx *gin.Context) {
	email := ctx.GetString("adminEmail")

	var admin models.Admin
	if result := initializers.DB.Select("id", "first_name", "last_name", "email", "phone").
		Where("email = ?", email).First(&admin); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgAdminNotFound)
		} else {
			log.Println("Error fetching admin dashboard:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	var users, products int64
	initializers.DB.Model(&models.User{}).Count(&users)
	initializers.DB.Model(&models.Product{}).Count(&products)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  "Welcome to the Admin Dashboard",
		"admin":    admin,
		"users":    users,
		"products": products,
	})
}
