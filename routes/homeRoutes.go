package routes

import (
	"github.com/RISHIK92/gift-mama-admin-backend/controllers"
	"github.com/RISHIK92/gift-mama-admin-backend/middlewares"
	"github.com/gin-gonic/gin"
)

func HomeRoutes(server *gin.Engine) {
	admin := server.Group("/admin", middlewares.AdminAuth())
	{
		admin.GET("/home", controllers.GetHome)
		admin.POST("/home", controllers.SaveHome)
		admin.POST("/upload-s3-image", controllers.UploadS3Image)
	}
}
