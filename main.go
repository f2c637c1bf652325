package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blogdesk/admin"
	"blogdesk/auth"
	"blogdesk/blog"
	"blogdesk/common"
	"blogdesk/contact"
	"blogdesk/database"
	"blogdesk/email"
	"blogdesk/models"
)

func main() {
	cfg, err := common.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	db, err := common.ConnectDb(cfg.DBFile)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Best effort: the tables may already exist.
	if err := database.RunMigrations(db); err != nil {
		log.Printf("Warning: could not run migrations: %v", err)
	}

	if err := ensureFirstAdmin(db, cfg); err != nil {
		log.Fatal("Failed to provision first admin: ", err)
	}

	tokens := auth.NewTokenService(cfg.SecretKey, cfg.TokenTTL)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	adminModule := admin.NewAdminModule(db, tokens)
	adminModule.RegisterRoutes(router)

	blogModule := blog.NewBlogModule(db, tokens)
	blogModule.RegisterRoutes(router)

	contactModule := contact.NewContactModule(email.NewEmailService(), cfg.ReceiverEmail)
	contactModule.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Blogs & Admin API",
		})
	})

	log.Printf("Starting server on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

// ensureFirstAdmin creates the permanent super-admin from the environment
// when the admins table is empty. Admins can never self-register, so a
// fresh deployment needs this one out-of-band account to log in with.
func ensureFirstAdmin(db *gorm.DB, cfg *common.Config) error {
	if cfg.FirstAdminUsername == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	passwordHash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	first := models.Admin{
		Username:     cfg.FirstAdminUsername,
		PasswordHash: passwordHash,
		IsSuperAdmin: true,
	}
	if err := db.Create(&first).Error; err != nil {
		return err
	}

	log.Printf("Created first admin %q (id=%d)", first.Username, first.ID)
	return nil
}
