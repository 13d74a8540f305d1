package main

import (
	"time"

	"github.com/RISHIK92/gift-mama-admin-backend/initializers"
	"github.com/RISHIK92/gift-mama-admin-backend/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://admin.giftmama.in"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.AuthRoutes(server)
	routes.AdminRoutes(server)
	routes.TaxonomyRoutes(server)
	routes.ProductRoutes(server)
	routes.FlashSaleRoutes(server)
	routes.CouponRoutes(server)
	routes.OrderRoutes(server)
	routes.HomeRoutes(server)
	routes.TestimonialRoutes(server)

	server.Run()
}
