// Package handler provides the HTTP request handlers.
// This file handles profile reads and user lookup.
package handler

import (
	"gather_server/internal/infrastructure/middleware"
	"gather_server/internal/service"
	"gather_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// GetMeHandler returns the caller's own profile.
// GET /user/me
func GetMeHandler(c *gin.Context) {
	data, err := service.Svc.User.Get(middleware.CallerID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// SearchUserHandler finds a user by exact login email.
// GET /user/search?email=xxx
func SearchUserHandler(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	data, err := service.Svc.User.SearchByEmail(email)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
