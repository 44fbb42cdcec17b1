package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profranchising/internal/auth"
	"profranchising/internal/config"
	"profranchising/internal/cost"
	"profranchising/internal/ingredient"
	"profranchising/internal/logger"
	"profranchising/internal/metrics"
	"profranchising/internal/middleware"
	"profranchising/internal/policy"
	"profranchising/internal/product"
	"profranchising/internal/storage"
)

// New wires services over the given stores and registers every route.
func New(cfg *config.Config, stores Stores, images storage.Store, log *zap.Logger) *gin.Engine {
	log = logger.OrNop(log)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(log),
		metrics.Middleware(),
		cors.New(corsConfig(cfg.CORSOrigins)),
	)

	// ───────────────────────── SERVICES ─────────────────────────
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	authService := auth.NewService(stores.Users, stores.Logins, tokens, log.Named("auth"))
	gate := policy.NewGate(stores.Users, log.Named("policy"))

	resolver := ingredient.NewResolver(stores.Ingredients)
	ingredientService := ingredient.NewService(stores.Ingredients, stores.Products, log.Named("ingredient"))

	calculator := cost.NewCalculator(stores.Products, resolver, stores.Costs, log.Named("cost"))
	costService := cost.NewService(stores.Costs, calculator)

	productService := product.NewService(
		stores.Products,
		resolver,
		calculator,
		images,
		product.Options{RecomputeCostOnEdit: cfg.RecomputeCostOnEdit},
		log.Named("product"),
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authService)
	ingredientHandler := ingredient.NewHandler(ingredientService)
	productHandler := product.NewHandler(productService)
	costHandler := cost.NewHandler(costService)

	requireAuth := middleware.AuthMiddleware(authService)
	can := func(c policy.Capability) gin.HandlerFunc {
		return middleware.RequireCapability(gate, c)
	}

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if !cfg.R2.Enabled() && cfg.UploadDir != "" {
		r.Static(storage.URLPrefix, cfg.UploadDir)
	}

	r.POST("/users", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/users", requireAuth, authHandler.ListUsers)

	// ───────────────────────── INGREDIENTS ─────────────────────────
	ingredients := r.Group("/ingredients", requireAuth)
	{
		ingredients.GET("", can(policy.List), ingredientHandler.List)
		ingredients.POST("", can(policy.Create), ingredientHandler.Create)
		ingredients.GET("/:id", can(policy.Get), ingredientHandler.Get)
		ingredients.PUT("/:id", can(policy.Update), ingredientHandler.Update)
		ingredients.DELETE("/:id", can(policy.Delete), ingredientHandler.Delete)
	}

	// ───────────────────────── PRODUCTS ─────────────────────────
	products := r.Group("/products", requireAuth)
	{
		products.GET("", can(policy.List), productHandler.List)
		products.POST("", can(policy.Create), productHandler.Create)
		products.GET("/:id", can(policy.Get), productHandler.Get)
		products.PUT("/:id", can(policy.Update), productHandler.Update)
		products.DELETE("/:id", can(policy.Delete), productHandler.Delete)
		products.PUT("/:id/image", can(policy.UploadImage), productHandler.UploadImage)
	}

	// ───────────────────────── COSTS ─────────────────────────
	costs := r.Group("/costs", requireAuth)
	{
		costs.GET("", costHandler.List)
		costs.POST("/:productId", costHandler.Compute)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
