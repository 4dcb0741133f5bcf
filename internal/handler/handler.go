package handler

import (
	"database/sql"
	"net/http"
	"tinylunches/internal/auth"
	"tinylunches/internal/category"
	"tinylunches/internal/config"
	"tinylunches/internal/item"
	"tinylunches/internal/itemcategory"
	"tinylunches/internal/lunch"
	"tinylunches/internal/middleware"
	"tinylunches/internal/observability"
	"tinylunches/internal/pantry"
	"tinylunches/internal/user"
	"tinylunches/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupHandler initializes all dependencies and routes.
func SetupHandler(db *sql.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())
	if observability.GlobalMetrics != nil {
		r.Use(middleware.PrometheusMiddleware(observability.GlobalMetrics))
	}

	// Token manager gets its secret and lifetime here, once, at startup.
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Repositories
	userRepo := user.NewUserRepository()
	itemRepo := item.NewItemRepository()
	categoryRepo := category.NewCategoryRepository()
	itemCategoryRepo := itemcategory.NewItemCategoryRepository()
	pantryRepo := pantry.NewPantryRepository()
	lunchRepo := lunch.NewLunchRepository()

	// Services
	userService := user.NewUserService(userRepo, db)
	itemService := item.NewItemService(itemRepo, db)
	categoryService := category.NewCategoryService(categoryRepo, db)
	itemCategoryService := itemcategory.NewItemCategoryService(itemCategoryRepo, db)
	pantryService := pantry.NewPantryService(pantryRepo, db)
	lunchService := lunch.NewLunchService(lunchRepo, db)

	// The guard resolves token claims against the user service.
	guard := middleware.RequireAuth(tokens, userService)

	// Controllers
	userController := user.NewUserController(userService, tokens)
	itemController := item.NewItemController(itemService)
	categoryController := category.NewCategoryController(categoryService)
	itemCategoryController := itemcategory.NewItemCategoryController(itemCategoryService)
	pantryController := pantry.NewPantryController(pantryService)
	lunchController := lunch.NewLunchController(lunchService)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Tiny Lunches API")
	})

	r.GET("/metrics", func(c *gin.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	userController.SetupRoutes(r, guard)
	itemController.SetupRoutes(r)
	categoryController.SetupRoutes(r)
	itemCategoryController.SetupRoutes(r)
	pantryController.SetupRoutes(r, guard)
	lunchController.SetupRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		web.NotFound(c, "Not found")
	})

	return r
}
