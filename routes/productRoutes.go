package routes

import (
	"github.com/RISHIK92/gift-mama-admin-backend/controllers"
	"github.com/RISHIK92/gift-mama-admin-backend/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine) {
	admin := server.Group("/admin", middlewares.AdminAuth())
	{
		admin.GET("/products", controllers.GetProducts)
		admin.GET("/products/:id", controllers.GetProduct)
		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/update-product/:id", controllers.UpdateProduct)
		admin.DELETE("/delete-product/:id", controllers.DeleteProduct)
	}
}
