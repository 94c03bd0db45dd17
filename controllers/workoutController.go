package controllers

import (
	"context"
	"net/http"
	"time"

	"golang-sportplans/database"
	"golang-sportplans/models"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) GetWorkouts() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		page, err := pageFrom(c)
		if err != nil {
			respondError(c, err)
			return
		}

		workouts, err := ctl.store.ListWorkouts(ctx, page)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, workouts)
	}
}

func (ctl *Controller) GetWorkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		id, err := pathID(c, "workout_id")
		if err != nil {
			respondError(c, err)
			return
		}

		workout, err := ctl.store.GetWorkout(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, workout)
	}
}

// CreateWorkout adds a workout under a plan the caller owns.
func (ctl *Controller) CreateWorkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var req models.CreateWorkoutRequest
		if err := bindRequest(c, &req); err != nil {
			respondError(c, err)
			return
		}

		who := identity(c)
		var workout *models.Workout
		err := ctl.guarded(ctx, who, database.KindPlan, *req.PlanID, func() error {
			var err error
			workout, err = ctl.store.CreateWorkout(ctx, who, req)
			return err
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, workout)
	}
}

func (ctl *Controller) UpdateWorkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		id, err := pathID(c, "workout_id")
		if err != nil {
			respondError(c, err)
			return
		}

		var req models.WorkoutFields
		if err := bindRequest(c, &req); err != nil {
			respondError(c, err)
			return
		}

		who := identity(c)
		err = ctl.guarded(ctx, who, database.KindWorkout, id, func() error {
			return ctl.store.UpdateWorkout(ctx, who, id, req)
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.String(http.StatusOK, "Workout updated successfully")
	}
}

func (ctl *Controller) DeleteWorkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		id, err := pathID(c, "workout_id")
		if err != nil {
			respondError(c, err)
			return
		}

		who := identity(c)
		err = ctl.guarded(ctx, who, database.KindWorkout, id, func() error {
			return ctl.store.DeleteWorkout(ctx, who, id)
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.String(http.StatusOK, "Workout deleted successfully")
	}
}

func (ctl *Controller) GetWorkoutExercises() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		id, err := pathID(c, "workout_id")
		if err != nil {
			respondError(c, err)
			return
		}

		if _, err := ctl.store.GetWorkout(ctx, id); err != nil {
			respondError(c, err)
			return
		}

		page, err := pageFrom(c)
		if err != nil {
			respondError(c, err)
			return
		}

		exercises, err := ctl.store.ListExercisesByWorkout(ctx, id, page)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, exercises)
	}
}
