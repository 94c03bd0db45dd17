package routes

import (
	"net/http"

	controller "golang-sportplans/controllers"
	"golang-sportplans/helpers"
	"golang-sportplans/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup builds the engine: ambient middleware, public routes, and the
// token-protected routes.
func Setup(ctl *controller.Controller, tokens *helpers.TokenManager, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())

	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	// the front end sends the bearer token in Authorization
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	router.Use(cors.New(corsConfig))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World!")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	publicRoutes := router.Group("/")
	{
		UserPublicRoutes(publicRoutes, ctl)
	}

	// Private routes
	privateRoutes := router.Group("/")
	privateRoutes.Use(middleware.Authentication(tokens))
	{
		UserRoutes(privateRoutes, ctl)
		PlanRoutes(privateRoutes, ctl)
		WorkoutRoutes(privateRoutes, ctl)
		ExerciseRoutes(privateRoutes, ctl)
	}

	return router
}
