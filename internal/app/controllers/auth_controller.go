package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/app/services"
	"github.com/peerconnect/peerconnect/internal/middleware"
)

// AuthController handles authentication operations
type AuthController struct {
	authService services.AuthService
	logService  services.LogService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logService services.LogService) *AuthController {
	return &AuthController{
		authService: authService,
		logService:  logService,
	}
}

// Login handles user authentication
// @Summary Log in
// @Description Verifies email and password, returns the user and a JWT access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.APIResponse "Missing or malformed credentials"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body"),
		})
		return
	}

	if detail := middleware.ValidateStruct(&req); detail != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: detail})
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logService.Record(ctx.Request.Context(), &resp.ID, "login", "User logged in", models.LogStatusSuccess, ctx.ClientIP())

	ctx.JSON(http.StatusOK, resp)
}
