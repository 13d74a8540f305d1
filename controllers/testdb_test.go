package controllers

import (
	"testing"

	"github.com/RISHIK92/gift-mama-admin-backend/initializers"
	"github.com/RISHIK92/gift-mama-admin-backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB swaps the global connection for an in-memory database so the
// handlers can run end to end, transactions included.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Coupon{},
		&models.CouponUsage{},
		&models.Order{},
		&models.OrderItem{},
		&models.ShippingAddress{},
		&models.Wallet{},
		&models.Transaction{},
		&models.FlashSale{},
		&models.FlashSaleItem{},
		&models.HomeImages{},
		&models.CustomSection{},
		&models.HomeOccasion{},
		&models.Testimonial{},
	)
	if err != nil {
		t.Fatal(err)
	}

	previous := initializers.DB
	initializers.DB = db
	t.Cleanup(func() { initializers.DB = previous })
	return db
}
