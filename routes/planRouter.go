package routes

import (
	controller "golang-sportplans/controllers"

	"github.com/gin-gonic/gin"
)

func PlanRoutes(incomingRoutes *gin.RouterGroup, ctl *controller.Controller) {
	incomingRoutes.GET("/plans", ctl.GetPlans())
	incomingRoutes.GET("/plans/:id", ctl.GetPlan())
	incomingRoutes.POST("/plans", ctl.CreatePlan())
	incomingRoutes.PUT("/plans/:id", ctl.UpdatePlan())
	incomingRoutes.DELETE("/plans/:id", ctl.DeletePlan())
	incomingRoutes.GET("/plans/:id/workouts", ctl.GetPlanWorkouts())
}
