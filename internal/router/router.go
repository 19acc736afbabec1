package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/windoze95/receitas-api/internal/config"
	"github.com/windoze95/receitas-api/internal/handlers"
	"github.com/windoze95/receitas-api/internal/logger"
	"github.com/windoze95/receitas-api/internal/middleware"
	"github.com/windoze95/receitas-api/internal/repository"
	"github.com/windoze95/receitas-api/internal/s3"
	"github.com/windoze95/receitas-api/internal/service"
	"gorm.io/gorm"
)

// SetupRouter sets up the Gin router. redisClient may be nil, in which case
// rate limiting is kept in process memory.
func SetupRouter(cfg *config.Config, database *gorm.DB, redisClient *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Request IDs first so the access log can carry them
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.AccessLogMiddleware())
	r.Use(cors.New(corsConfig(cfg.EnvVars.CorsOrigin)))

	r.GET("/", catalogue)

	// Ping route for testing
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Repositories
	recipeRepo := repository.NewRecipeRepository(database)
	userRepo := repository.NewUserRepository(database)
	favoriteRepo := repository.NewFavoriteRepository(database)
	userRecipeRepo := repository.NewUserRecipeRepository(database)

	// Services and handlers
	searchHandler := handlers.NewSearchHandler(service.NewSearchService(cfg, recipeRepo))
	recipeHandler := handlers.NewRecipeHandler(service.NewRecipeService(cfg, recipeRepo))
	favoriteHandler := handlers.NewFavoriteHandler(service.NewFavoriteService(cfg, favoriteRepo, recipeRepo))
	userRecipeHandler := handlers.NewUserRecipeHandler(service.NewUserRecipeService(cfg, userRecipeRepo))
	userService := service.NewUserService(cfg, userRepo, favoriteRepo, userRecipeRepo)
	userHandler := handlers.NewUserHandler(userService)

	limiter := searchLimiter(cfg, redisClient)

	// Routes that don't require token verification
	public := r.Group("/")
	{
		// Search by ingredients
		public.GET("/receitas", limiter, searchHandler.SearchRecipes)
		// Random recipe
		public.GET("/receitas/surpresa", limiter, recipeHandler.GetSurpriseRecipe)
		// Single recipe by its ID
		public.GET("/receitas/:id", recipeHandler.GetRecipe)

		public.POST("/auth/registro", userHandler.CreateUser)
		public.POST("/auth/login", userHandler.LoginUser)
	}

	// Routes that require token verification
	protected := r.Group("/")
	{
		protected.Use(middleware.VerifyTokenMiddleware(cfg))

		protected.POST("/receitas/:id/favoritar", favoriteHandler.ToggleFavorite)
		protected.GET("/receitas/favoritos", favoriteHandler.ListFavorites)

		protected.POST("/receitas", userRecipeHandler.CreateUserRecipe)
		protected.GET("/receitas/minhas", userRecipeHandler.ListUserRecipes)
		protected.GET("/receitas/minhas/:id", userRecipeHandler.GetUserRecipe)

		protected.GET("/auth/perfil", middleware.AttachUserToContext(userService), userHandler.GetProfile)

		if cfg.S3Enabled() {
			imageHandler := handlers.NewImageHandler(s3.NewStore(cfg))
			protected.POST("/imagens", imageHandler.UploadImage)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"erro": "Rota não encontrada"})
	})

	return r
}

// corsConfig allows every origin for "*" and credentials only for an explicit list.
func corsConfig(origin string) cors.Config {
	c := cors.DefaultConfig()
	c.AddAllowHeaders("Authorization")
	if origin == "" || origin == "*" {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = []string{origin}
	c.AllowCredentials = true
	return c
}

func searchLimiter(cfg *config.Config, redisClient *redis.Client) gin.HandlerFunc {
	rps := cfg.EnvVars.SearchRateLimit
	if rps < 1 {
		rps = 1
	}
	if redisClient != nil {
		return middleware.NewRedisRateLimiter(redisClient, middleware.RedisRateLimitConfig{
			Window:    time.Second,
			Limit:     rps,
			KeyPrefix: "ratelimit:receitas",
		}).Middleware()
	}
	return middleware.RateLimitByIP(rps, 5*time.Minute, 10*time.Minute)
}

func catalogue(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "online",
		"endpoints": gin.H{
			"busca":     "GET /receitas?ingredientes=ovo,leite&pagina=1",
			"surpresa":  "GET /receitas/surpresa",
			"detalhes":  "GET /receitas/:id",
			"registro":  "POST /auth/registro",
			"login":     "POST /auth/login",
			"perfil":    "GET /auth/perfil",
			"favoritar": "POST /receitas/:id/favoritar",
			"favoritos": "GET /receitas/favoritos",
			"minhas":    "GET /receitas/minhas",
			"nova":      "POST /receitas",
			"imagens":   "POST /imagens",
		},
	})
}
