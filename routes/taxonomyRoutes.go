package routes

import (
	"github.com/RISHIK92/gift-mama-admin-backend/controllers"
	"github.com/RISHIK92/gift-mama-admin-backend/middlewares"
	"github.com/gin-gonic/gin"
)

func TaxonomyRoutes(server *gin.Engine) {
	admin := server.Group("/admin", middlewares.AdminAuth())
	{
		admin.GET("/get-sections", controllers.GetSections)
		admin.POST("/add-section", controllers.AddSection)
		admin.PUT("/update-section/:id", controllers.UpdateSection)
		admin.DELETE("/delete-section/:id", controllers.DeleteSection)
		admin.POST("/add-subsection", controllers.AddSubsection)
		admin.PUT("/update-subsection", controllers.UpdateSubsection)
		admin.DELETE("/delete-subsection", controllers.DeleteSubsection)

		admin.GET("/get-category", controllers.GetCategoryRows)
		admin.POST("/add-category", controllers.AddCategory)
		admin.PUT("/update-category/:id", controllers.UpdateCategory)
		admin.DELETE("/delete-category/:id", controllers.DeleteCategory)
		admin.POST("/add-subcategory/:categoryId", controllers.AddSubcategory)
		admin.DELETE("/delete-subcategory/:categoryId", controllers.DeleteCategorySubcategory)

		admin.GET("/get-occasion", controllers.GetOccasions)
		admin.POST("/add-occasion", controllers.AddOccasion)
		admin.PUT("/update-occasion/:id", controllers.UpdateOccasion)
		admin.DELETE("/delete-occasion/:id", controllers.DeleteOccasion)

		admin.GET("/get-recipient", controllers.GetRecipients)
		admin.POST("/add-recipient", controllers.AddRecipient)
		admin.PUT("/update-recipient/:id", controllers.UpdateRecipient)
		admin.DELETE("/delete-recipient/:id", controllers.DeleteRecipient)

		admin.GET("/categories", controllers.GetCategorySummaries)
		admin.GET("/occasions", controllers.GetOccasionSummaries)
		admin.GET("/recipients", controllers.GetRecipientSummaries)
		admin.GET("/subcategories", controllers.GetSubcategorySummaries)

		admin.GET("/get-categories", controllers.GetCatalog)
		admin.POST("/add-catalog-entry", controllers.AddCatalogEntry)
		admin.PUT("/update-catalog-entry/:id", controllers.UpdateCatalogEntry)
		admin.DELETE("/delete-catalog-entry/:id", controllers.DeleteCatalogEntry)
	}
}
