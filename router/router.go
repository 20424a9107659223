package router

import (
	"learnhub/config"
	"learnhub/controllers"
	dbpkg "learnhub/db"
	"learnhub/logger"
	"learnhub/middleware"
	"learnhub/services"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// Dependencies are shared by every request.
type Dependencies struct {
	DB        *gorm.DB
	Generator services.Generator
	Config    config.Configuration
	Log       *logger.Logger
}

// Initialize wires all routes and middlewares.
func Initialize(r *gin.Engine, deps Dependencies) {
	r.Use(gin.Recovery())
	r.Use(Logger(deps.Log))
	r.Use(middleware.CORSMiddleware(deps.Config.CorsOrigins))
	r.Use(dbpkg.SetDBtoContext(deps.DB))
	r.Use(controllers.SetConfiguration(deps.Config))
	r.Use(controllers.SetGenerator(deps.Generator))

	r.GET("/", controllers.Health)
	r.NoRoute(controllers.RouteNotFound)

	api := r.Group("/api")

	users := api.Group("/users")
	users.GET("", controllers.GetUsers)
	users.POST("", controllers.CreateUser)
	users.POST("/login", controllers.Login)
	users.GET("/:id", controllers.GetUserByID)
	users.PATCH("/:id", controllers.UpdateUser)
	users.DELETE("/:id", controllers.DeleteUser)

	categories := api.Group("/categories")
	categories.GET("", controllers.GetCategories)
	categories.POST("", controllers.CreateCategory)
	categories.GET("/:id", controllers.GetCategoryByID)
	categories.GET("/:id/sub-categories", controllers.GetCategorySubCategories)
	categories.PATCH("/:id", controllers.UpdateCategory)
	categories.DELETE("/:id", controllers.DeleteCategory)

	subCategories := api.Group("/sub-categories")
	subCategories.GET("", controllers.GetSubCategories)
	subCategories.POST("", controllers.CreateSubCategory)
	subCategories.GET("/:id", controllers.GetSubCategoryByID)
	subCategories.PATCH("/:id", controllers.UpdateSubCategory)
	subCategories.DELETE("/:id", controllers.DeleteSubCategory)

	prompts := api.Group("/prompts")
	prompts.POST("", controllers.CreatePrompt)
	prompts.GET("", controllers.GetPrompts)
	prompts.GET("/user/:userId", controllers.GetPromptsByUser)
	prompts.GET("/:id", controllers.GetPromptByID)

	// Admin routes
	admin := prompts.Group("")
	admin.Use(controllers.IdentifyUser(), Authorizer(), Adminizer())
	admin.GET("/all-with-details", controllers.GetPromptsWithDetails)

	deps.Log.Info("routes initialized")
}
