package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/testhub/config"
	"github.com/lshigami/testhub/internal/controller"
	adminctrl "github.com/lshigami/testhub/internal/controller/admin"
	userctrl "github.com/lshigami/testhub/internal/controller/user"
	"github.com/lshigami/testhub/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	origins := cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	wildcard := len(origins) == 1 && origins[0] == "*"
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: !wildcard,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// RegisterRoutes mounts every API endpoint under /api.
func RegisterRoutes(
	router *gin.Engine,
	adminTestCtrl *adminctrl.AdminTestController,
	userTestCtrl *userctrl.UserTestController,
	authCtrl *userctrl.AuthController,
	resultCtrl *userctrl.ResultController,
) {
	router.GET("/", controller.APIIndex)

	api := router.Group("/api")
	{
		api.GET("", controller.APIIndex)
		api.GET("/", controller.APIIndex)
		api.POST("/login", authCtrl.Login)

		api.GET("/tests", userTestCtrl.GetAllTests)
		api.POST("/tests/create", adminTestCtrl.CreateTest)
		api.GET("/tests/:test_id", userTestCtrl.GetTestDetails)
		api.DELETE("/tests/:test_id/delete", adminTestCtrl.DeleteTest)
		api.POST("/tests/:test_id/submit", userTestCtrl.SubmitTestAttempt)

		api.GET("/results/:test_id", resultCtrl.GetTestResults)
		api.GET("/results/user/:user_id", resultCtrl.GetUserResults)
		api.GET("/result/:result_id", resultCtrl.GetResult)
	}
	router.NoRoute(controller.NoRoute)
}
