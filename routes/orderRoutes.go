package routes

import (
	"github.com/RISHIK92/gift-mama-admin-backend/controllers"
	"github.com/RISHIK92/gift-mama-admin-backend/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	admin := server.Group("/admin", middlewares.AdminAuth())
	{
		admin.GET("/orders", controllers.GetOrders)
		admin.GET("/orders/:id", controllers.GetOrder)
		admin.PUT("/orders/:id/status", controllers.UpdateOrderStatus)
		admin.PUT("/orders/:id/delivery", controllers.UpdateDelivery)
	}
}
