package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pratapadwait/pratapliving/config"
	"github.com/pratapadwait/pratapliving/jobs"
	"github.com/pratapadwait/pratapliving/routes"
	"github.com/pratapadwait/pratapliving/services"
	"github.com/pratapadwait/pratapliving/services/logger"
)

func main() {
	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	l := logger.NewDefaultLogger(logger.InfoLevel)
	ctx := context.Background()

	authService := services.NewAuthService(services.AuthServiceOptions{
		DB:     config.DB,
		Logger: l.WithPrefix("auth"),
	})
	if err := authService.EnsureAdmin(ctx); err != nil {
		log.Fatalf("Failed to bootstrap admin account: %v", err)
	}

	if strings.EqualFold(os.Getenv("SEED_DB"), "true") {
		if err := services.SeedProperties(ctx, config.DB, l.WithPrefix("seed")); err != nil {
			log.Fatalf("Failed to seed properties: %v", err)
		}
	}

	uploader := services.NewCloudinaryUploader(config.Cloudinary)
	propertyService := routes.SetupRoutes(router, config.DB, config.RedisClient, uploader, m)

	jobs.SetListingRefresher(propertyService)
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
