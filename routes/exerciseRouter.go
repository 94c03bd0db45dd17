package routes

import (
	controller "golang-sportplans/controllers"

	"github.com/gin-gonic/gin"
)

func ExerciseRoutes(incomingRoutes *gin.RouterGroup, ctl *controller.Controller) {
	incomingRoutes.GET("/exercises", ctl.GetExercises())
	incomingRoutes.POST("/exercises", ctl.CreateExercise())
	incomingRoutes.GET("/exercises/:exercise_id", ctl.GetExercise())
	incomingRoutes.PUT("/exercises/:exercise_id", ctl.UpdateExercise())
	incomingRoutes.DELETE("/exercises/:exercise_id", ctl.DeleteExercise())
}
