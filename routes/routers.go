package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pratapadwait/pratapliving/controllers"
	middlewares "github.com/pratapadwait/pratapliving/middleware"
	"github.com/pratapadwait/pratapliving/services"
	"github.com/pratapadwait/pratapliving/services/logger"
)

// SetupRoutes registers the full API surface. Mutating property routes
// and inquiry listings sit behind the opt-in admin gate; everything
// else is public.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, uploader services.ImageUploader, m *melody.Melody) *services.PropertyService {
	l := logger.NewDefaultLogger(logger.InfoLevel)

	propertyService := services.NewPropertyService(services.PropertyServiceOptions{
		DB:     db,
		Redis:  redisCli,
		Logger: l.WithPrefix("properties"),
	})
	inquiryService := services.NewInquiryService(services.InquiryServiceOptions{
		DB:     db,
		Melody: m,
		Logger: l.WithPrefix("inquiries"),
	})
	authService := services.NewAuthService(services.AuthServiceOptions{
		DB:     db,
		Logger: l.WithPrefix("auth"),
	})

	propertyController := controllers.NewPropertyController(propertyService, l)
	inquiryController := controllers.NewInquiryController(inquiryService, l)
	uploadController := controllers.NewUploadController(uploader, l)
	authController := controllers.NewAuthController(authService, l)

	admin := middlewares.AdminRequired()

	api := router.Group("/api")

	api.GET("/properties", propertyController.GetProperties)
	api.GET("/properties/featured", propertyController.GetFeaturedProperties)
	api.GET("/properties/:id", propertyController.GetProperty)
	api.POST("/properties", admin, propertyController.CreateProperty)
	api.PUT("/properties/:id", admin, propertyController.UpdateProperty)
	api.DELETE("/properties/:id", admin, propertyController.DeleteProperty)

	api.POST("/partner-inquiries", inquiryController.CreatePartnerInquiry)
	api.GET("/partner-inquiries", admin, inquiryController.GetPartnerInquiries)
	api.POST("/contact-inquiries", inquiryController.CreateContactInquiry)
	api.GET("/contact-inquiries", admin, inquiryController.GetContactInquiries)

	api.POST("/images/upload", admin, uploadController.Upload)
	api.POST("/images/multi-upload", admin, uploadController.MultiUpload)

	api.POST("/auth/login", authController.Login)

	return propertyService
}
