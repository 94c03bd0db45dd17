package controllers

import (
	"context"
	"net/http"
	"time"

	"golang-sportplans/database"
	"golang-sportplans/models"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) GetPlans() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		page, err := pageFrom(c)
		if err != nil {
			respondError(c, err)
			return
		}

		plans, err := ctl.store.ListPlans(ctx, page)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, plans)
	}
}

func (ctl *Controller) GetPlan() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		id, err := pathID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}

		plan, err := ctl.store.GetPlan(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, plan)
	}
}

// CreatePlan makes the caller the owner of the new plan.
func (ctl *Controller) CreatePlan() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var req models.PlanRequest
		if err := bindRequest(c, &req); err != nil {
			respondError(c, err)
			return
		}

		plan, err := ctl.store.CreatePlan(ctx, identity(c).ID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, plan)
	}
}

func (ctl *Controller) UpdatePlan() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		id, err := pathID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}

		var req models.PlanRequest
		if err := bindRequest(c, &req); err != nil {
			respondError(c, err)
			return
		}

		who := identity(c)
		err = ctl.guarded(ctx, who, database.KindPlan, id, func() error {
			return ctl.store.UpdatePlan(ctx, who, id, req)
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.String(http.StatusOK, "Plan updated successfully")
	}
}

func (ctl *Controller) DeletePlan() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		id, err := pathID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}

		who := identity(c)
		err = ctl.guarded(ctx, who, database.KindPlan, id, func() error {
			return ctl.store.DeletePlan(ctx, who, id)
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.String(http.StatusOK, "Plan deleted successfully")
	}
}

// GetPlanWorkouts lists the workouts of an existing plan.
func (ctl *Controller) GetPlanWorkouts() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		id, err := pathID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}

		if _, err := ctl.store.GetPlan(ctx, id); err != nil {
			respondError(c, err)
			return
		}

		page, err := pageFrom(c)
		if err != nil {
			respondError(c, err)
			return
		}

		workouts, err := ctl.store.ListWorkoutsByPlan(ctx, id, page)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, workouts)
	}
}
