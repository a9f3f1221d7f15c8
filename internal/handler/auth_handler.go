// Package handler provides the HTTP request handlers.
// This file handles account registration, login, and the token lifecycle.
package handler

import (
	"gather_server/internal/dto/request"
	"gather_server/internal/infrastructure/middleware"
	"gather_server/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterHandler creates an account and signs the new user in.
// POST /auth/register
func RegisterHandler(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Auth.Register(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// LoginHandler authenticates by email and password.
// POST /auth/login
func LoginHandler(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Auth.Login(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RefreshTokenHandler rotates the access/refresh token pair.
// POST /auth/refresh
func RefreshTokenHandler(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Auth.Refresh(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// LogoutHandler revokes the caller's refresh token.
// POST /auth/logout
func LogoutHandler(c *gin.Context) {
	if err := service.Svc.Auth.Logout(middleware.CallerID(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
