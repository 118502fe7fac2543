package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"myhealth/rehab-api/internal/config"
	"myhealth/rehab-api/internal/service"
)

// Version is reported by the banner endpoint.
const Version = "1.0.0"

// Services bundles everything the handlers depend on.
type Services struct {
	Auth     service.AuthService
	User     service.UserService
	Exercise service.ExerciseService
	Training service.TrainingService
	Post     service.PostService
	Upload   service.UploadService
}

// NewRouter returns an engine with recovery, request logging and metrics
// middleware and every route registered.
func NewRouter(cfg config.Config, svc Services, log logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), PrometheusMiddleware())
	SetupRoutes(router, cfg, svc)
	return router
}

func SetupRoutes(router *gin.Engine, cfg config.Config, svc Services) {
	authHandler := NewAuthHandler(svc.Auth, svc.User)
	userHandler := NewUserHandler(svc.User, svc.Upload)
	exerciseHandler := NewExerciseHandler(svc.Exercise)
	trainingHandler := NewTrainingHandler(svc.Training)
	postHandler := NewPostHandler(svc.Post, svc.Upload)
	localeHandler := NewLocaleHandler(cfg.Locale)

	authMiddleware := AuthMiddleware(svc.Auth)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "rehab training API",
			"version": Version,
			"endpoints": gin.H{
				"auth":     "/api/auth",
				"users":    "/api/users",
				"training": "/api/training",
				"posts":    "/api/posts",
				"locales":  "/api/locales",
			},
		})
	})
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.Uploads.Dir != "" {
		router.Static("/uploads", cfg.Uploads.Dir)
	}

	apiGroup := router.Group("/api")
	apiGroup.GET("/locales", localeHandler.GetLocales)

	authGroup := apiGroup.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", authMiddleware, authHandler.Me)
	}

	userGroup := apiGroup.Group("/users")
	{
		userGroup.GET("/profile/:userId", userHandler.GetProfile)
		userGroup.PUT("/profile", authMiddleware, userHandler.UpdateProfile)
		userGroup.GET("/stats", authMiddleware, userHandler.GetStats)
		userGroup.GET("/stats/:userId", authMiddleware, userHandler.GetStats)
		userGroup.GET("/training-plans", authMiddleware, userHandler.GetTrainingPlans)
		userGroup.GET("/training-plans/:userId", authMiddleware, userHandler.GetTrainingPlans)
		userGroup.POST("/avatar/upload-url", authMiddleware, userHandler.RequestAvatarUploadURL)
	}

	trainingGroup := apiGroup.Group("/training")
	{
		trainingGroup.GET("/exercises", exerciseHandler.ListExercises)
		trainingGroup.GET("/exercises/:exerciseId", exerciseHandler.GetExercise)
		trainingGroup.GET("/exercises/target/:targetArea", exerciseHandler.ListByTargetArea)

		trainingGroup.GET("/plans", trainingHandler.ListPlans)
		trainingGroup.GET("/plans/:planId", trainingHandler.GetPlan)
		trainingGroup.POST("/plans", authMiddleware, trainingHandler.CreatePlan)
		trainingGroup.PUT("/plans/:planId", authMiddleware, trainingHandler.UpdatePlan)

		trainingGroup.GET("/records", authMiddleware, trainingHandler.ListRecords)
		trainingGroup.POST("/records", authMiddleware, trainingHandler.CreateRecord)
		trainingGroup.PUT("/records/:recordId", authMiddleware, trainingHandler.UpdateRecord)
	}

	postGroup := apiGroup.Group("/posts")
	{
		postGroup.GET("", postHandler.ListPosts)
		postGroup.GET("/", postHandler.ListPosts)
		postGroup.POST("", authMiddleware, postHandler.CreatePost)
		postGroup.POST("/", authMiddleware, postHandler.CreatePost)
		postGroup.GET("/user/:userId", postHandler.ListUserPosts)
		postGroup.POST("/images/upload-url", authMiddleware, postHandler.RequestImageUploadURL)
		postGroup.POST("/comments/:commentId/like", authMiddleware, postHandler.LikeComment)

		postGroup.GET("/:postId", postHandler.GetPost)
		postGroup.GET("/:postId/comments", postHandler.ListComments)
		postGroup.POST("/:postId/like", authMiddleware, postHandler.LikePost)
		postGroup.POST("/:postId/comments", authMiddleware, postHandler.AddComment)
	}
}
