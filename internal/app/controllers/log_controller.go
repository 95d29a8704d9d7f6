package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/app/services"
	"github.com/peerconnect/peerconnect/internal/middleware"
	"github.com/peerconnect/peerconnect/internal/pkg/helpers"
)

// LogController handles system log operations
type LogController struct {
	logService services.LogService
}

// NewLogController creates a new LogController
func NewLogController(logService services.LogService) *LogController {
	return &LogController{
		logService: logService,
	}
}

// Add handles appending a log entry
// @Summary Append a log entry
// @Description Records an audit entry. Status defaults to success; the client IP is taken from the connection, not the payload.
// @Tags logs
// @Accept json
// @Produce json
// @Param request body dto.CreateLogRequest true "Log entry"
// @Success 201 {object} models.SystemLog
// @Failure 400 {object} dto.APIResponse "action is required"
// @Router /api/logs/add [post]
func (c *LogController) Add(ctx *gin.Context) {
	var req dto.CreateLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body"),
		})
		return
	}

	entry, err := c.logService.Add(ctx.Request.Context(), &req, ctx.ClientIP())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, entry)
}

// GetAll handles listing all log entries
// @Summary List log entries
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SystemLog
// @Router /api/logs [get]
func (c *LogController) GetAll(ctx *gin.Context) {
	entries, err := c.logService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// GetByID handles fetching a single log entry
// @Summary Get a log entry
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Log ID"
// @Success 200 {object} models.SystemLog
// @Failure 404 {object} dto.APIResponse "Log entry not found"
// @Router /api/logs/{id} [get]
func (c *LogController) GetByID(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	entry, err := c.logService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// GetByUserID handles listing a user's log entries
// @Summary List a user's log entries
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {array} models.SystemLog
// @Router /api/logs/user/{id} [get]
func (c *LogController) GetByUserID(ctx *gin.Context) {
	userID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	entries, err := c.logService.GetByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}
