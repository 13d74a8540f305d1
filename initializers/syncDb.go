package initializers

import (
	"log"

	"github.com/RISHIK92/gift-mama-admin-backend/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.Section{},
		&models.Category{},
		&models.Occasion{},
		&models.Recipient{},
		&models.CatalogEntry{},
		&models.Product{},
		&models.ProductImage{},
		&models.CustomizationTemplate{},
		&models.CustomizableArea{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.FlashSale{},
		&models.FlashSaleItem{},
		&models.Coupon{},
		&models.CouponUsage{},
		&models.Order{},
		&models.OrderItem{},
		&models.ShippingAddress{},
		&models.Wallet{},
		&models.Transaction{},
		&models.HomeImages{},
		&models.CustomSection{},
		&models.HomeOccasion{},
		&models.Testimonial{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	log.Println("Database synced successfully.")
}
