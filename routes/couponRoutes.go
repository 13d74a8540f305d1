package routes

import (
	"github.com/RISHIK92/gift-mama-admin-backend/controllers"
	"github.com/RISHIK92/gift-mama-admin-backend/middlewares"
	"github.com/gin-gonic/gin"
)

func CouponRoutes(server *gin.Engine) {
	// Validation and application are called by the storefront checkout.
	server.POST("/validate-coupon", controllers.ValidateCoupon)
	server.POST("/apply-coupon", controllers.ApplyCoupon)

	admin := server.Group("/admin", middlewares.AdminAuth())
	{
		admin.GET("/coupons", controllers.GetCoupons)
		admin.POST("/coupons", controllers.CreateCoupon)
		admin.PUT("/coupons/:id", controllers.UpdateCoupon)
		admin.DELETE("/coupons/:id", controllers.DeleteCoupon)
	}
}
