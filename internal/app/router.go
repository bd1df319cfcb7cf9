package app

import (
	"pengasuh_backend/docs"
	"pengasuh_backend/internal/middleware"
	"pengasuh_backend/internal/model"
	"pengasuh_backend/pkg/logger"
	"pengasuh_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, validator middleware.TokenValidator) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	auth := middleware.AuthMiddleware(validator, logger.Log.Named("auth"))

	caregiver := router.Group("/api")
	caregiver.Use(auth)
	a.registerCaregiverRoutes(caregiver, c)

	admin := router.Group("/api/admin")
	admin.Use(auth, middleware.RoleMiddleware(model.Admin))
	a.registerAdminRoutes(admin, c)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/sign-up", c.auth.SignUp)
		public.POST("/auth/sign-in", c.auth.SignIn)
		public.GET("/media", c.media.List)
	}
}

func (a *App) registerCaregiverRoutes(group *gin.RouterGroup, c *controllers) {
	group.POST("/auth/sign-out", c.auth.SignOut)
	group.GET("/auth/me", c.auth.Me)

	profile := group.Group("/profile")
	{
		profile.GET("", c.user.GetProfile)
		profile.PUT("", c.user.UpdateProfile)
		profile.PUT("/password", c.user.ChangePassword)
		profile.POST("/avatar", c.user.UploadAvatar)
	}

	stress := group.Group("/stress")
	{
		stress.GET("/questions", c.stress.GetQuestions)
		stress.POST("/submit", c.stress.Submit)
	}

	quiz := group.Group("/quiz")
	{
		quiz.GET("/questions", c.quiz.GetQuestions)
		quiz.POST("/submit", c.quiz.Submit)
	}

	history := group.Group("/history")
	{
		history.GET("", c.history.List)
		history.GET("/latest", c.history.Latest)
		history.GET("/export", c.history.Export)
	}
}

func (a *App) registerAdminRoutes(group *gin.RouterGroup, c *controllers) {
	group.POST("/stress/questions", c.admin.CreateStressQuestion)
	group.POST("/quiz/questions", c.admin.CreateQuizQuestion)
	group.POST("/media", c.media.Create)
	group.POST("/media/upload", c.media.Upload)
}
