package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang-sportplans/helpers"
	"golang-sportplans/models"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var req models.CredentialsRequest
		if err := bindRequest(c, &req); err != nil {
			respondMessage(c, err)
			return
		}

		hash, err := helpers.HashPassword(req.Password)
		if err != nil {
			respondMessage(c, err)
			return
		}

		user, err := ctl.store.CreateUser(ctx, req.Username, hash, helpers.RoleUser)
		if err != nil {
			respondMessage(c, err)
			return
		}

		token, err := ctl.tokens.Issue(helpers.Identity{ID: user.ID, Username: user.Username, Role: user.Role})
		if err != nil {
			respondMessage(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.TokenResponse{Message: "User registered successfully.", Token: token})
	}
}

// Login reports an unknown username and a wrong password the same way.
func (ctl *Controller) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var req models.CredentialsRequest
		if err := bindRequest(c, &req); err != nil {
			respondMessage(c, err)
			return
		}

		user, err := ctl.store.GetUserByUsername(ctx, req.Username)
		if errors.Is(err, helpers.ErrNotFound) {
			respondMessage(c, helpers.ErrInvalidCredentials)
			return
		}
		if err != nil {
			respondMessage(c, err)
			return
		}

		if !helpers.VerifyPassword(req.Password, user.PasswordHash) {
			respondMessage(c, helpers.ErrInvalidCredentials)
			return
		}

		token, err := ctl.tokens.Issue(helpers.Identity{ID: user.ID, Username: user.Username, Role: user.Role})
		if err != nil {
			respondMessage(c, err)
			return
		}

		c.JSON(http.StatusOK, models.TokenResponse{Message: "Login successful.", Token: token})
	}
}

func (ctl *Controller) RenewToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RenewRequest
		if err := bindRequest(c, &req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Token is required."})
			return
		}

		token, err := ctl.tokens.Renew(req.Token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": helpers.ErrInvalidToken.Error()})
			return
		}

		c.JSON(http.StatusOK, models.TokenResponse{Message: "Token renewed successfully.", Token: token})
	}
}

// GetCurrentUser returns the profile behind the caller's token.
func (ctl *Controller) GetCurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		user, err := ctl.store.GetUserByID(ctx, identity(c).ID)
		if err != nil {
			respondMessage(c, err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
