package routes

import (
	"github.com/RISHIK92/gift-mama-admin-backend/controllers"
	"github.com/RISHIK92/gift-mama-admin-backend/middlewares"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine) {
	server.POST("/admin/register", controllers.Register)
	server.POST("/admin/signin", controllers.SignIn)

	admin := server.Group("/admin", middlewares.AdminAuth())
	{
		admin.GET("/dashboard", controllers.GetDashboard)
	}
}
