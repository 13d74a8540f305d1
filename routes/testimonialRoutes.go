package routes

import (
	"github.com/RISHIK92/gift-mama-admin-backend/controllers"
	"github.com/RISHIK92/gift-mama-admin-backend/middlewares"
	"github.com/gin-gonic/gin"
)

func TestimonialRoutes(server *gin.Engine) {
	// The storefront reads the listing, so it stays open.
	server.GET("/admin/testimonials", controllers.GetTestimonials)

	admin := server.Group("/admin", middlewares.AdminAuth())
	{
		admin.POST("/testimonials", controllers.CreateTestimonial)
		admin.PUT("/testimonials/:id", controllers.UpdateTestimonial)
		admin.DELETE("/testimonials/:id", controllers.DeleteTestimonial)
	}
}
