package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/app/services"
	"github.com/peerconnect/peerconnect/internal/middleware"
	"github.com/peerconnect/peerconnect/internal/pkg/helpers"
)

// AnnouncementController handles announcement operations
type AnnouncementController struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// GetAll handles the announcement feed
// @Summary List announcements
// @Description With ?role=R returns the rows visible to that role: unexpired and targeted at everyone, the role itself, or any target when R is Admin. Without a role the full list comes back for the management screen.
// @Tags announcements
// @Produce json
// @Param role query string false "Viewer role"
// @Success 200 {array} models.Announcement
// @Router /api/announcements [get]
func (c *AnnouncementController) GetAll(ctx *gin.Context) {
	role := ctx.Query("role")

	var err error
	var announcements interface{}
	if role == "" {
		announcements, err = c.announcementService.GetAll(ctx.Request.Context())
	} else {
		announcements, err = c.announcementService.GetVisible(ctx.Request.Context(), role)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, announcements)
}

// Create handles publishing an announcement
// @Summary Create an announcement
// @Description Publishes the announcement, then emails it to active users of the target role. Send failures are logged; the creation already succeeded.
// @Tags announcements
// @Accept json
// @Produce json
// @Param request body dto.CreateAnnouncementRequest true "Announcement"
// @Success 200 {object} models.Announcement
// @Failure 400 {object} dto.APIResponse "created_by, title and description are required"
// @Router /api/announcements [post]
func (c *AnnouncementController) Create(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body"),
		})
		return
	}

	announcement, err := c.announcementService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, announcement)
}

// Delete handles removing an announcement
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.APIResponse "Announcement not found"
// @Router /api/announcements/{id} [delete]
func (c *AnnouncementController) Delete(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.announcementService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Announcement deleted successfully"))
}
