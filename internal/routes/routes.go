package routes

import (
	"taskhub-api/internal/cache"
	"taskhub-api/internal/handlers"
	"taskhub-api/internal/middleware"
	"taskhub-api/internal/service"
	"taskhub-api/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires stores, services and handlers over the given database
// connection and returns the configured router.
func SetupRoutes(db *gorm.DB) *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  true,
			"message": "Server TaskHub API is running",
		})
	})

	// Storage ports and services
	users := store.NewUserStore(db)
	tasks := store.NewTaskStore(db)
	notices := store.NewNoticeStore(db)
	identities := cache.NewTTLCache[string, middleware.Identity]()

	taskService := service.NewTaskService(tasks, notices)
	dashboardService := service.NewDashboardService(tasks, users)
	noticeService := service.NewNoticeService(notices)

	userHandler := handlers.NewUserHandler(users, noticeService, identities)
	taskHandler := handlers.NewTaskHandler(taskService, dashboardService, users)

	protect := middleware.Protect(users, identities)
	adminOnly := middleware.AdminRequired()

	api := ginRouter.Group("/api")

	// User endpoints
	user := api.Group("/user")
	{
		user.POST("/register", userHandler.Register)
		user.POST("/login", userHandler.Login)
	}

	protectedUser := user.Group("")
	protectedUser.Use(protect)
	{
		protectedUser.POST("/logout", userHandler.Logout)
		protectedUser.GET("/get-team", userHandler.GetTeam)
		protectedUser.GET("/notifications", userHandler.Notifications)
		protectedUser.PUT("/profile", userHandler.UpdateProfile)
		protectedUser.PUT("/read-noti", userHandler.MarkNotificationRead)
		protectedUser.PUT("/change-password", userHandler.ChangePassword)
	}

	adminUser := protectedUser.Group("")
	adminUser.Use(adminOnly)
	{
		adminUser.PUT("/:id", userHandler.ActivateUserProfile)
		adminUser.DELETE("/:id", userHandler.DeleteUserProfile)
	}

	// Task endpoints
	task := api.Group("/tasks")
	task.Use(protect)
	{
		task.GET("", taskHandler.List)
		task.GET("/dashboard", taskHandler.Dashboard)
		task.GET("/:id", taskHandler.Get)
		task.GET("/recover/:id", taskHandler.Recover)
		task.POST("/activity/:id", taskHandler.PostActivity)
	}

	adminTask := task.Group("")
	adminTask.Use(adminOnly)
	{
		adminTask.POST("/create", taskHandler.Create)
		adminTask.POST("/duplicate/:id", taskHandler.Duplicate)
		adminTask.PUT("/create-subtask/:id", taskHandler.AddSubTask)
		adminTask.PUT("/update/:id", taskHandler.Update)
		adminTask.PUT("/:id", taskHandler.Trash)
		// Gin has no optional path params; register both forms.
		adminTask.DELETE("/delete-restore", taskHandler.DeleteRestore)
		adminTask.DELETE("/delete-restore/:id", taskHandler.DeleteRestore)
	}

	return ginRouter
}
