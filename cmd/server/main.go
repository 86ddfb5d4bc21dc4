package main

import (
	"fmt"
	"log"
	"time"

	"taskhub-api/internal/auth"
	"taskhub-api/internal/config"
	"taskhub-api/internal/database"
	"taskhub-api/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	auth.Configure(
		cfg.Auth.JWTSecret,
		cfg.Auth.JWTIssuer,
		cfg.Auth.JWTAudience,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
	)

	// Init database
	database.InitDB(cfg.Database.Path)

	// Setup the routes (public and protected routes)
	ginRoutes := routes.SetupRoutes(database.GetDB())

	// Start server
	port := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server starting on port %s", port)
	log.Println("API endpoints:")
	log.Println("  POST   /api/user/register")
	log.Println("  POST   /api/user/login")
	log.Println("  GET    /api/user/notifications")
	log.Println("  PUT    /api/user/read-noti")
	log.Println("  POST   /api/tasks/create")
	log.Println("  POST   /api/tasks/duplicate/:id")
	log.Println("  POST   /api/tasks/activity/:id")
	log.Println("  GET    /api/tasks/dashboard")
	log.Println("  GET    /api/tasks")
	log.Println("  GET    /api/tasks/:id")
	log.Println("  GET    /api/tasks/recover/:id")
	log.Println("  PUT    /api/tasks/create-subtask/:id")
	log.Println("  PUT    /api/tasks/update/:id")
	log.Println("  PUT    /api/tasks/:id")
	log.Println("  DELETE /api/tasks/delete-restore/:id?")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
