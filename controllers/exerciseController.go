package controllers

import (
	"context"
	"net/http"
	"time"

	"golang-sportplans/database"
	"golang-sportplans/models"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) GetExercises() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		page, err := pageFrom(c)
		if err != nil {
			respondError(c, err)
			return
		}

		exercises, err := ctl.store.ListExercises(ctx, page)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, exercises)
	}
}

func (ctl *Controller) GetExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		id, err := pathID(c, "exercise_id")
		if err != nil {
			respondError(c, err)
			return
		}

		exercise, err := ctl.store.GetExercise(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, exercise)
	}
}

// CreateExercise adds an exercise under a workout whose plan the caller owns.
func (ctl *Controller) CreateExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var req models.CreateExerciseRequest
		if err := bindRequest(c, &req); err != nil {
			respondError(c, err)
			return
		}

		who := identity(c)
		var exercise *models.Exercise
		err := ctl.guarded(ctx, who, database.KindWorkout, *req.WorkoutID, func() error {
			var err error
			exercise, err = ctl.store.CreateExercise(ctx, who, req)
			return err
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, exercise)
	}
}

func (ctl *Controller) UpdateExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		id, err := pathID(c, "exercise_id")
		if err != nil {
			respondError(c, err)
			return
		}

		var req models.ExerciseFields
		if err := bindRequest(c, &req); err != nil {
			respondError(c, err)
			return
		}

		who := identity(c)
		err = ctl.guarded(ctx, who, database.KindExercise, id, func() error {
			return ctl.store.UpdateExercise(ctx, who, id, req)
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.String(http.StatusOK, "Exercise updated successfully")
	}
}

func (ctl *Controller) DeleteExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		id, err := pathID(c, "exercise_id")
		if err != nil {
			respondError(c, err)
			return
		}

		who := identity(c)
		err = ctl.guarded(ctx, who, database.KindExercise, id, func() error {
			return ctl.store.DeleteExercise(ctx, who, id)
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.String(http.StatusOK, "Exercise deleted successfully")
	}
}
