package routes

import (
	controller "golang-sportplans/controllers"

	"github.com/gin-gonic/gin"
)

func WorkoutRoutes(incomingRoutes *gin.RouterGroup, ctl *controller.Controller) {
	incomingRoutes.GET("/workouts", ctl.GetWorkouts())
	incomingRoutes.POST("/workouts", ctl.CreateWorkout())
	incomingRoutes.GET("/workouts/:workout_id", ctl.GetWorkout())
	incomingRoutes.PUT("/workouts/:workout_id", ctl.UpdateWorkout())
	incomingRoutes.DELETE("/workouts/:workout_id", ctl.DeleteWorkout())
	incomingRoutes.GET("/workouts/:workout_id/exercises", ctl.GetWorkoutExercises())
}
