package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/pratapadwait/pratapliving/dto"
	apperrors "github.com/pratapadwait/pratapliving/errors"
	"github.com/pratapadwait/pratapliving/response"
	"github.com/pratapadwait/pratapliving/services"
	"github.com/pratapadwait/pratapliving/services/logger"
)

type AuthController struct {
	service *services.AuthService
	logger  logger.Logger
}

func NewAuthController(service *services.AuthService, l logger.Logger) *AuthController {
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AuthController{service: service, logger: l}
}

// Login handles POST /api/auth/login for the opt-in admin gate.
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	token, err := ctl.service.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, apperrors.ErrInvalidPassword) {
		response.Unauthorized(c)
		return
	}
	if err != nil {
		ctl.logger.Error("login for %s: %v", req.Username, err)
		response.ServerError(c, "Login failed")
		return
	}
	response.OK(c, dto.AuthResponse{Token: token})
}
