package routes

import (
	controller "golang-sportplans/controllers"

	"github.com/gin-gonic/gin"
)

func UserPublicRoutes(incomingRoutes *gin.RouterGroup, ctl *controller.Controller) {
	incomingRoutes.POST("/users/register", ctl.Register())
	incomingRoutes.POST("/users/login", ctl.Login())
	incomingRoutes.POST("/users/renew", ctl.RenewToken()) // takes the token in the body, no auth middleware
}

func UserRoutes(incomingRoutes *gin.RouterGroup, ctl *controller.Controller) {
	incomingRoutes.GET("/users/me", ctl.GetCurrentUser())
}
