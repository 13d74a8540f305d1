package routes

import (
	"github.com/RISHIK92/gift-mama-admin-backend/controllers"
	"github.com/RISHIK92/gift-mama-admin-backend/middlewares"
	"github.com/gin-gonic/gin"
)

func FlashSaleRoutes(server *gin.Engine) {
	admin := server.Group("/admin", middlewares.AdminAuth())
	{
		admin.GET("/flash-sales", controllers.GetFlashSales)
		admin.GET("/flash-sales/:id", controllers.GetFlashSale)
		admin.POST("/flash-sales", controllers.CreateFlashSale)
		admin.PUT("/flash-sales/:id", controllers.UpdateFlashSale)
		admin.PATCH("/flash-sales/:id/toggle", controllers.ToggleFlashSale)
		admin.DELETE("/flash-sales/:id", controllers.DeleteFlashSale)
	}
}
