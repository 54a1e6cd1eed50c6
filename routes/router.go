package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ottshare/ott-share-hub/auth"
	"github.com/ottshare/ott-share-hub/config"
	"github.com/ottshare/ott-share-hub/controllers"
	"github.com/ottshare/ott-share-hub/middleware"
	"github.com/ottshare/ott-share-hub/store"
	"github.com/ottshare/ott-share-hub/utils"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// SetupRouter wires routes, middlewares, and controllers around the injected
// store and token manager.
func SetupRouter(cfg config.AppConfig, st *store.Store, tokens *auth.Manager) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if utils.Logger != nil {
		r.Use(middleware.RequestLogger(utils.Logger))
		r.Use(middleware.Recovery(utils.Logger))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	authController := controllers.NewAuthController(st, tokens)
	postController := controllers.NewPostController(st)
	catalogController := controllers.NewCatalogController(st)
	adminController := controllers.NewAdminController(st)
	healthController := controllers.NewHealthController(Version)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimit(cfg.RateLimitPerMinute))
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/me", middleware.AuthRequired(tokens), authController.Me)
	authGroup.PUT("/profile", middleware.AuthRequired(tokens), authController.UpdateProfile)

	api.GET("/ott", catalogController.ListServices)
	api.GET("/ott/:id", catalogController.GetService)
	api.GET("/plans", catalogController.ListPlans)
	api.POST("/subscription", middleware.AuthRequired(tokens), catalogController.Subscribe)

	postsGroup := api.Group("/posts")
	postsGroup.GET("", middleware.OptionalAuth(tokens), postController.ListPosts)
	postsGroup.GET("/:id", middleware.OptionalAuth(tokens), postController.GetPost)
	postsGroup.POST("", middleware.AuthRequired(tokens), postController.CreatePost)
	postsGroup.PUT("/:id", middleware.AuthRequired(tokens), postController.UpdatePost)
	postsGroup.DELETE("/:id", middleware.AuthRequired(tokens), postController.DeletePost)
	postsGroup.POST("/:id/comments", middleware.AuthRequired(tokens), postController.CreateComment)

	api.PUT("/comments/:id", middleware.AuthRequired(tokens), postController.UpdateComment)
	api.DELETE("/comments/:id", middleware.AuthRequired(tokens), postController.DeleteComment)

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AuthRequired(tokens), middleware.AdminRequired())
	adminGroup.GET("/users", adminController.ListUsers)
	adminGroup.PUT("/users/:id", adminController.UpdateUser)
	adminGroup.DELETE("/users/:id", adminController.DeleteUser)
	adminGroup.GET("/posts", adminController.ListPosts)
	adminGroup.GET("/comments", adminController.ListComments)
	adminGroup.GET("/stats", adminController.Stats)
	adminGroup.POST("/ott", catalogController.CreateService)
	adminGroup.PUT("/ott/:id", catalogController.UpdateService)
	adminGroup.DELETE("/ott/:id", catalogController.DeleteService)

	api.GET("/health", healthController.Check)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Fail(ctx, http.StatusNotFound, "요청하신 경로를 찾을 수 없습니다.")
	})

	return r
}
