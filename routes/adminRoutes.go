package routes

import (
	"github.com/RISHIK92/gift-mama-admin-backend/controllers"
	"github.com/RISHIK92/gift-mama-admin-backend/middlewares"
	"github.com/gin-gonic/gin"
)

func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/admin", middlewares.AdminAuth())
	{
		admin.GET("/admins", controllers.GetAdmins)
		admin.GET("/admins/:id", controllers.GetAdmin)
		admin.POST("/admins", controllers.CreateAdmin)
		admin.PUT("/admins/:id", controllers.UpdateAdmin)
		admin.DELETE("/admins/:id", controllers.DeleteAdmin)

		admin.GET("/users", controllers.GetUsers)
		admin.GET("/get-users", controllers.GetUsersWithContact)
		admin.DELETE("/delete-user/:userId", controllers.DeleteUser)
	}
}
