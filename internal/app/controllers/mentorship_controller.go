package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/app/services"
	"github.com/peerconnect/peerconnect/internal/middleware"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
	"github.com/peerconnect/peerconnect/internal/pkg/helpers"
)

// MentorshipController handles mentorship lifecycle operations
type MentorshipController struct {
	mentorshipService services.MentorshipService
}

// NewMentorshipController creates a new MentorshipController
func NewMentorshipController(mentorshipService services.MentorshipService) *MentorshipController {
	return &MentorshipController{
		mentorshipService: mentorshipService,
	}
}

// Create handles opening a mentorship
// @Summary Create a mentorship
// @Description Creates a mentorship; status defaults to Pending and start_date to today
// @Tags mentorships
// @Accept json
// @Produce json
// @Param request body dto.CreateMentorshipRequest true "Mentorship"
// @Success 201 {object} models.Mentorship
// @Failure 400 {object} dto.APIResponse "mentor_id and student_id are required"
// @Router /api/mentorships [post]
func (c *MentorshipController) Create(ctx *gin.Context) {
	var req dto.CreateMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body"),
		})
		return
	}

	mentorship, err := c.mentorshipService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, mentorship)
}

// GetAll handles listing all mentorships
// @Summary List mentorships
// @Tags mentorships
// @Produce json
// @Success 200 {array} models.Mentorship
// @Router /api/mentorships [get]
func (c *MentorshipController) GetAll(ctx *gin.Context) {
	mentorships, err := c.mentorshipService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mentorships)
}

// GetAllWithStudent handles the admin dashboard listing
// @Summary List mentorships with student identity
// @Description Mentorships joined with the student's name, email and profile image, newest first
// @Tags mentorships
// @Produce json
// @Success 200 {array} models.MentorshipWithStudent
// @Router /api/mentorship [get]
func (c *MentorshipController) GetAllWithStudent(ctx *gin.Context) {
	mentorships, err := c.mentorshipService.GetAllWithStudent(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mentorships)
}

// GetByID handles retrieving one mentorship
// @Summary Get a mentorship
// @Tags mentorships
// @Produce json
// @Param id path int true "Mentorship ID"
// @Success 200 {object} models.Mentorship
// @Failure 404 {object} dto.APIResponse "Mentorship not found"
// @Router /api/mentorships/{id} [get]
func (c *MentorshipController) GetByID(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	mentorship, err := c.mentorshipService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mentorship)
}

// GetByUserID handles listing the mentorships a user is part of
// @Summary List a user's mentorships
// @Description Mentorships where the user appears as mentor or student
// @Tags mentorships
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Mentorship
// @Router /api/mentorships/user/{id} [get]
func (c *MentorshipController) GetByUserID(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	mentorships, err := c.mentorshipService.GetByUserID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mentorships)
}

// Update handles a partial mentorship update
// @Summary Update a mentorship
// @Description Applies the supplied fields only. An invalid status returns HTTP 200 with an error body; long-standing clients depend on that shape.
// @Tags mentorships
// @Accept json
// @Produce json
// @Param id path int true "Mentorship ID"
// @Param request body dto.UpdateMentorshipRequest true "Fields to change"
// @Success 200 {object} models.Mentorship
// @Failure 404 {object} dto.APIResponse "Mentorship not found"
// @Router /api/mentorships/{id} [put]
func (c *MentorshipController) Update(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body"),
		})
		return
	}

	mentorship, err := c.mentorshipService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidMentorshipStatus) {
			ctx.JSON(http.StatusOK, gin.H{"error": "Invalid status"})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mentorship)
}

// Delete handles removing a mentorship
// @Summary Delete a mentorship
// @Tags mentorships
// @Produce json
// @Param id path int true "Mentorship ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.APIResponse "Mentorship not found"
// @Router /api/mentorships/{id} [delete]
func (c *MentorshipController) Delete(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.mentorshipService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Mentorship deleted successfully"))
}

// Count handles the total mentorship count
// @Summary Count mentorships
// @Tags stats
// @Produce json
// @Success 200 {object} dto.TotalResponse
// @Router /api/mentorships/total [get]
func (c *MentorshipController) Count(ctx *gin.Context) {
	total, err := c.mentorshipService.Count(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TotalResponse{Total: total})
}
